package config

import (
	"fmt"
	"os"
	"path"
	"strings"
)

const (
	EnvPricesFile       = "LATINTA_PRICES_FILE"
	EnvPricesSheet      = "LATINTA_PRICES_SHEET"
	EnvPricesExportName = "LATINTA_PRICES_EXPORT_NAME"
)

// PricesConfig locates the price list and names its spreadsheet export.
type PricesConfig struct {
	File       string `toml:"file"`
	Sheet      string `toml:"sheet"`
	ExportName string `toml:"export_name"`
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *PricesConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *PricesConfig) Merge(overlay *PricesConfig) {
	if overlay.File != "" {
		c.File = overlay.File
	}
	if overlay.Sheet != "" {
		c.Sheet = overlay.Sheet
	}
	if overlay.ExportName != "" {
		c.ExportName = overlay.ExportName
	}
}

func (c *PricesConfig) loadDefaults() {
	if c.File == "" {
		c.File = "la_tinta_precios_superficie.csv"
	}
	if c.Sheet == "" {
		c.Sheet = "Precios"
	}
	if c.ExportName == "" {
		c.ExportName = "precios_latinta.xlsx"
	}
}

func (c *PricesConfig) loadEnv() {
	if v := os.Getenv(EnvPricesFile); v != "" {
		c.File = v
	}
	if v := os.Getenv(EnvPricesSheet); v != "" {
		c.Sheet = v
	}
	if v := os.Getenv(EnvPricesExportName); v != "" {
		c.ExportName = v
	}
}

func (c *PricesConfig) validate() error {
	if strings.Contains(c.File, "..") || path.IsAbs(c.File) {
		return fmt.Errorf("file must be a relative key: %s", c.File)
	}
	if !strings.HasSuffix(c.ExportName, ".xlsx") {
		return fmt.Errorf("export_name must end in .xlsx: %s", c.ExportName)
	}
	return nil
}
