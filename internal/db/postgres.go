package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/stemlab/biobank-backend/internal/platform/logger"
	"github.com/stemlab/biobank-backend/internal/types"
	"github.com/stemlab/biobank-backend/internal/utils"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(logg *logger.Logger) (*PostgresService, error) {
	serviceLog := logg.With("service", "PostgresService")

	postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", logg)
	postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", logg)
	postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", logg)
	postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", logg)
	postgresName := utils.GetEnv("POSTGRES_NAME", "biobank", logg)

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		postgresUser,
		postgresPassword,
		postgresHost,
		postgresPort,
		postgresName,
	)

	gormLog := gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             1 * time.Second,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   gormLog,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	return &PostgresService{db: db, log: serviceLog}, nil
}

func (s *PostgresService) DB() *gorm.DB { return s.db }

func (s *PostgresService) AutoMigrateAll() error {
	return AutoMigrateAll(s.db)
}

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&types.AgeRange{},
		&types.Gender{},
		&types.Country{},
		&types.CellType{},
		&types.Virus{},
		&types.Transposon{},
		&types.Unit{},
		&types.IntegratingVectorType{},
		&types.NonIntegratingVectorType{},
		&types.ReprogrammingFactor{},
		&types.Organization{},
		&types.OrgRole{},
		&types.CelllineOrganization{},

		&types.Molecule{},
		&types.MoleculeReference{},
		&types.Disease{},

		&types.Donor{},
		&types.Cellline{},
		&types.DonorDisease{},
		&types.CelllineDisease{},
		&types.DiseaseVariant{},

		&types.CelllineEthics{},
		&types.CelllineDerivation{},
		&types.CelllineCultureConditions{},
		&types.CultureMediumOther{},
		&types.CultureMediumSupplement{},
		&types.CelllineIntegratingVector{},
		&types.CelllineNonIntegratingVector{},
		&types.CelllineReprogrammingFactors{},
		&types.CelllineKaryotype{},
		&types.CelllineHlaTyping{},
		&types.CelllineStrFingerprinting{},
		&types.CelllineGenomeAnalysis{},
		&types.CelllineDiseaseGenotype{},
		&types.GenotypingSNP{},
		&types.GenotypingRsNumber{},
		&types.CelllineGeneticModification{},
		&types.GeneticModificationTransgeneExpression{},
		&types.GeneticModificationGeneKnockOut{},
		&types.GeneticModificationGeneKnockIn{},
		&types.GeneticModificationIsogenic{},
		&types.CelllineCharacterization{},
		&types.CelllineCharacterizationPluritest{},
		&types.MarkerImune{},
		&types.MarkerImuneMolecule{},
		&types.MarkerRtPcr{},
		&types.MarkerRtPcrMolecule{},
		&types.MarkerFacs{},
		&types.MarkerFacsMolecule{},
		&types.MarkerMorphology{},
		&types.MarkerExpressionProfile{},
		&types.MarkerExpressionProfileMolecule{},
		&types.CelllinePublication{},

		&types.CelllineBatch{},
		&types.CelllineAliquot{},
	)
}
