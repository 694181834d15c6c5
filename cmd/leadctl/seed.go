package main

import (
	"context"
	"fmt"
	"os"

	"buildchem-be/internal/config"
	"buildchem-be/internal/dto"
	"buildchem-be/internal/pkg/logger"
	"buildchem-be/internal/pkg/serverutils"
	"buildchem-be/internal/repository/unitofwork"
	"buildchem-be/internal/service"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newSeedCmd(verbose *bool) *cobra.Command {
	var file string
	var replace bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load solutions, job openings and companies from a YAML file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			seed, err := loadSeed(file)
			if err != nil {
				return err
			}

			cfg := config.Load()
			seed.DefaultWebsite(cfg.Directory.CompanyWebsite)

			db, err := openDB(cfg, *verbose)
			if err != nil {
				return err
			}

			catalog := service.NewCatalogService(
				unitofwork.NewRepositoryFactory(db),
				logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.IsProduction()),
			)
			res, err := catalog.SeedCatalog(context.Background(), seed, replace)
			if err != nil {
				return fmt.Errorf("seed catalog: %w", err)
			}

			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(),
				"Seeded %d solutions, %d series, %d products, %d jobs, %d companies\n",
				res.Solutions, res.Series, res.Products, res.Jobs, res.Companies)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "catalog.yaml", "seed file")
	cmd.Flags().BoolVar(&replace, "replace", false, "delete existing rows of each seeded section first")
	return cmd
}

func loadSeed(path string) (*dto.CatalogSeed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return parseSeed(raw)
}

func parseSeed(raw []byte) (*dto.CatalogSeed, error) {
	var seed dto.CatalogSeed
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	if seed.IsEmpty() {
		return nil, fmt.Errorf("seed file has no solutions, careers or companies")
	}
	if err := serverutils.ValidateRequest(&seed); err != nil {
		return nil, fmt.Errorf("invalid seed file: %w", err)
	}
	return &seed, nil
}
