package services

import (
	"errors"
	"time"

	"github.com/duet-app/duet/internal/models"
)

func mustParseDay(raw string) time.Time {
	parsed, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		panic(err)
	}
	return parsed
}

func dayPtr(raw string) *time.Time {
	day := mustParseDay(raw)
	return &day
}

func uintPtr(value uint) *uint {
	return &value
}

type stubLinkRepository struct {
	links []models.PeriodLink
}

func (repo *stubLinkRepository) FindByParticipant(accountID uint) (models.PeriodLink, bool, error) {
	for _, link := range repo.links {
		if link.TrackedAccountID == accountID {
			return link, true, nil
		}
		if link.PartnerID != nil && *link.PartnerID == accountID {
			return link, true, nil
		}
	}
	return models.PeriodLink{}, false, nil
}

func (repo *stubLinkRepository) FindByID(linkID uint) (models.PeriodLink, bool, error) {
	for _, link := range repo.links {
		if link.ID == linkID {
			return link, true, nil
		}
	}
	return models.PeriodLink{}, false, nil
}

func (repo *stubLinkRepository) FindByInviteCode(inviteCode string) (models.PeriodLink, bool, error) {
	for _, link := range repo.links {
		if link.InviteCode == inviteCode {
			return link, true, nil
		}
	}
	return models.PeriodLink{}, false, nil
}

func (repo *stubLinkRepository) Create(link *models.PeriodLink) (bool, error) {
	for _, existing := range repo.links {
		if existing.TrackedAccountID == link.TrackedAccountID {
			return false, nil
		}
	}
	link.ID = uint(len(repo.links) + 1)
	repo.links = append(repo.links, *link)
	return true, nil
}

func (repo *stubLinkRepository) UpdatePartner(linkID uint, partnerID *uint) error {
	for index := range repo.links {
		if repo.links[index].ID == linkID {
			repo.links[index].PartnerID = partnerID
		}
	}
	return nil
}

type stubCycleRepository struct {
	cycles []models.Cycle
}

func (repo *stubCycleRepository) FindActive(trackedAccountID uint) (models.Cycle, bool, error) {
	for _, cycle := range repo.cycles {
		if cycle.TrackedAccountID == trackedAccountID && cycle.IsActive {
			return cycle, true, nil
		}
	}
	return models.Cycle{}, false, nil
}

func (repo *stubCycleRepository) FindByIDForTracked(cycleID uint, trackedAccountID uint) (models.Cycle, bool, error) {
	for _, cycle := range repo.cycles {
		if cycle.ID == cycleID && cycle.TrackedAccountID == trackedAccountID {
			return cycle, true, nil
		}
	}
	return models.Cycle{}, false, nil
}

func (repo *stubCycleRepository) ListCompleted(trackedAccountID uint, limit int) ([]models.Cycle, error) {
	completed := make([]models.Cycle, 0, len(repo.cycles))
	for _, cycle := range repo.cycles {
		if cycle.TrackedAccountID == trackedAccountID && cycle.Completed() {
			completed = append(completed, cycle)
		}
	}
	if limit > 0 && len(completed) > limit {
		completed = completed[len(completed)-limit:]
	}
	return completed, nil
}

func (repo *stubCycleRepository) CreateActive(cycle *models.Cycle) (bool, error) {
	if _, found, _ := repo.FindActive(cycle.TrackedAccountID); found {
		return false, nil
	}
	cycle.ID = uint(len(repo.cycles) + 1)
	repo.cycles = append(repo.cycles, *cycle)
	return true, nil
}

func (repo *stubCycleRepository) Complete(cycleID uint, endDate time.Time, periodLength int) error {
	for index := range repo.cycles {
		if repo.cycles[index].ID == cycleID {
			end := endDate
			repo.cycles[index].IsActive = false
			repo.cycles[index].EndDate = &end
			repo.cycles[index].PeriodLength = periodLength
		}
	}
	return nil
}

type stubIssueRepository struct {
	issues []models.Issue
}

func (repo *stubIssueRepository) Create(issue *models.Issue) error {
	issue.ID = uint(len(repo.issues) + 1)
	repo.issues = append(repo.issues, *issue)
	return nil
}

func (repo *stubIssueRepository) ListByTrackedAndDayRange(trackedAccountID uint, dayStart time.Time, dayEnd time.Time) ([]models.Issue, error) {
	matched := make([]models.Issue, 0, len(repo.issues))
	for _, issue := range repo.issues {
		if issue.TrackedAccountID != trackedAccountID {
			continue
		}
		if issue.LogDate.Before(dayStart) || !issue.LogDate.Before(dayEnd) {
			continue
		}
		matched = append(matched, issue)
	}
	return matched, nil
}

func (repo *stubIssueRepository) ListByCycle(cycleID uint) ([]models.Issue, error) {
	matched := make([]models.Issue, 0, len(repo.issues))
	for _, issue := range repo.issues {
		if issue.CycleID == cycleID {
			matched = append(matched, issue)
		}
	}
	return matched, nil
}

type stubAidRepository struct {
	curated []models.CuratedAid
	custom  []models.CustomAid
}

func (repo *stubAidRepository) ListCuratedByProblem(problem string) ([]models.CuratedAid, error) {
	matched := make([]models.CuratedAid, 0, len(repo.curated))
	for _, aid := range repo.curated {
		if aid.Problem == problem {
			matched = append(matched, aid)
		}
	}
	return matched, nil
}

func (repo *stubAidRepository) ListCustomByAccountAndProblem(accountID uint, problem string) ([]models.CustomAid, error) {
	matched := make([]models.CustomAid, 0, len(repo.custom))
	for _, aid := range repo.custom {
		if aid.AccountID == accountID && aid.Problem == problem {
			matched = append(matched, aid)
		}
	}
	return matched, nil
}

func (repo *stubAidRepository) ListCustomByAccount(accountID uint) ([]models.CustomAid, error) {
	matched := make([]models.CustomAid, 0, len(repo.custom))
	for _, aid := range repo.custom {
		if aid.AccountID == accountID {
			matched = append(matched, aid)
		}
	}
	return matched, nil
}

func (repo *stubAidRepository) CreateCurated(aid *models.CuratedAid) error {
	aid.ID = uint(len(repo.curated) + 1)
	repo.curated = append(repo.curated, *aid)
	return nil
}

func (repo *stubAidRepository) CreateCustom(aid *models.CustomAid) error {
	aid.ID = uint(len(repo.custom) + 1)
	repo.custom = append(repo.custom, *aid)
	return nil
}

func (repo *stubAidRepository) FindCustomByIDForAccount(aidID uint, accountID uint) (models.CustomAid, bool, error) {
	for _, aid := range repo.custom {
		if aid.ID == aidID && aid.AccountID == accountID {
			return aid, true, nil
		}
	}
	return models.CustomAid{}, false, nil
}

func (repo *stubAidRepository) UpdateCustomActive(aidID uint, isActive bool) error {
	for index := range repo.custom {
		if repo.custom[index].ID == aidID {
			repo.custom[index].IsActive = isActive
		}
	}
	return nil
}

type stubLookoutRepository struct {
	lookouts []models.Lookout
}

func (repo *stubLookoutRepository) ListByTracked(trackedAccountID uint) ([]models.Lookout, error) {
	matched := make([]models.Lookout, 0, len(repo.lookouts))
	for _, lookout := range repo.lookouts {
		if lookout.TrackedAccountID == trackedAccountID {
			matched = append(matched, lookout)
		}
	}
	return matched, nil
}

func (repo *stubLookoutRepository) FindByIDForTracked(lookoutID uint, trackedAccountID uint) (models.Lookout, bool, error) {
	for _, lookout := range repo.lookouts {
		if lookout.ID == lookoutID && lookout.TrackedAccountID == trackedAccountID {
			return lookout, true, nil
		}
	}
	return models.Lookout{}, false, nil
}

func (repo *stubLookoutRepository) Create(lookout *models.Lookout) error {
	lookout.ID = uint(len(repo.lookouts) + 1)
	repo.lookouts = append(repo.lookouts, *lookout)
	return nil
}

func (repo *stubLookoutRepository) MarkSeen(lookoutID uint) error {
	for index := range repo.lookouts {
		if repo.lookouts[index].ID == lookoutID {
			repo.lookouts[index].IsSeen = true
		}
	}
	return nil
}

var errStubAccountNotFound = errors.New("account not found")

type stubAccountRepository struct {
	accounts []models.Account
}

func (repo *stubAccountRepository) CountAccounts() (int64, error) {
	return int64(len(repo.accounts)), nil
}

func (repo *stubAccountRepository) FindByID(accountID uint) (models.Account, error) {
	for _, account := range repo.accounts {
		if account.ID == accountID {
			return account, nil
		}
	}
	return models.Account{}, errStubAccountNotFound
}

func (repo *stubAccountRepository) FindByNormalizedEmail(email string) (models.Account, error) {
	for _, account := range repo.accounts {
		if account.Email == email {
			return account, nil
		}
	}
	return models.Account{}, errStubAccountNotFound
}

func (repo *stubAccountRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	_, err := repo.FindByNormalizedEmail(email)
	return err == nil, nil
}

func (repo *stubAccountRepository) Create(account *models.Account) error {
	account.ID = uint(len(repo.accounts) + 1)
	repo.accounts = append(repo.accounts, *account)
	return nil
}

func (repo *stubAccountRepository) Save(account *models.Account) error {
	for index := range repo.accounts {
		if repo.accounts[index].ID == account.ID {
			repo.accounts[index] = *account
			return nil
		}
	}
	return errStubAccountNotFound
}

func newLinkedResolver(trackedID uint, partnerID uint) (*RoleResolver, *stubLinkRepository) {
	links := &stubLinkRepository{
		links: []models.PeriodLink{
			{ID: 1, TrackedAccountID: trackedID, PartnerID: uintPtr(partnerID), InviteCode: "code-1"},
		},
	}
	return NewRoleResolver(links), links
}
