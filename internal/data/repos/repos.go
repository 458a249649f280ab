package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/degreeplan-backend/internal/data/repos/catalog"
	"github.com/yungbote/degreeplan-backend/internal/platform/logger"
)

type InstitutionRepo = catalog.InstitutionRepo
type CourseRepo = catalog.CourseRepo
type DisciplineMappingRepo = catalog.DisciplineMappingRepo
type CredentialRequirementRepo = catalog.CredentialRequirementRepo

// Catalog groups the reference-data repositories.
type Catalog struct {
	Institutions InstitutionRepo
	Courses      CourseRepo
	Disciplines  DisciplineMappingRepo
	Credentials  CredentialRequirementRepo
}

func NewCatalog(db *gorm.DB, log *logger.Logger) Catalog {
	return Catalog{
		Institutions: catalog.NewInstitutionRepo(db, log),
		Courses:      catalog.NewCourseRepo(db, log),
		Disciplines:  catalog.NewDisciplineMappingRepo(db, log),
		Credentials:  catalog.NewCredentialRequirementRepo(db, log),
	}
}
