package app

import (
	"strings"

	"nsxfint/internal/adapters"
	"nsxfint/internal/ports"
)

type Service struct {
	Report  ports.UsageReportPort
	Catalog ports.FeatureCatalogPort
	Writer  ports.ReportWriterPort
}

func NewService() Service {
	return Service{
		Report:  adapters.NewReportFileAdapter(),
		Catalog: adapters.NewCatalogEmbedAdapter(),
		Writer:  adapters.NewOutputCSVAdapter(),
	}
}

// catalogPort returns the configured catalog source, or a file-backed
// override when the request names one.
func (s Service) catalogPort(path string) ports.FeatureCatalogPort {
	if strings.TrimSpace(path) != "" {
		return adapters.NewCatalogFileAdapter(path)
	}
	return s.Catalog
}
