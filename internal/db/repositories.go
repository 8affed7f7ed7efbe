package db

import "gorm.io/gorm"

type Repositories struct {
	Accounts *AccountRepository
	Links    *LinkRepository
	Cycles   *CycleRepository
	Issues   *IssueRepository
	Aids     *AidRepository
	Lookouts *LookoutRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Accounts: NewAccountRepository(database),
		Links:    NewLinkRepository(database),
		Cycles:   NewCycleRepository(database),
		Issues:   NewIssueRepository(database),
		Aids:     NewAidRepository(database),
		Lookouts: NewLookoutRepository(database),
	}
}
