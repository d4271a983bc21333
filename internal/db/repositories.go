package db

import "gorm.io/gorm"

type Repositories struct {
	Users         *UserRepository
	Organizations *OrganizationRepository
	Contracts     *ContractRepository
	Jobs          *JobRepository
	Candidates    *CandidateRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(database),
		Organizations: NewOrganizationRepository(database),
		Contracts:     NewContractRepository(database),
		Jobs:          NewJobRepository(database),
		Candidates:    NewCandidateRepository(database),
	}
}
