package services

import (
	"strings"

	"github.com/duet-app/duet/internal/models"
)

const maxAidTitleLength = 120

type AidInput struct {
	Problem     string
	Title       string
	Description string
}

type CuratedAidInput struct {
	Problem      string
	Category     string
	Title        string
	Description  string
	Priority     int
	ForAccountID *uint
}

type AidServiceRepository interface {
	CreateCurated(aid *models.CuratedAid) error
	CreateCustom(aid *models.CustomAid) error
	FindCustomByIDForAccount(aidID uint, accountID uint) (models.CustomAid, bool, error)
	UpdateCustomActive(aidID uint, isActive bool) error
	ListCustomByAccount(accountID uint) ([]models.CustomAid, error)
}

type AidService struct {
	roles *RoleResolver
	aids  AidServiceRepository
}

func NewAidService(roles *RoleResolver, aids AidServiceRepository) *AidService {
	return &AidService{
		roles: roles,
		aids:  aids,
	}
}

// CreateCustomAid lets the tracked person author advice for themself.
func (service *AidService) CreateCustomAid(requesterID uint, input AidInput) (models.CustomAid, error) {
	role, _, err := service.roles.Resolve(requesterID)
	if err != nil {
		return models.CustomAid{}, err
	}
	if role != RolePeriodUser {
		return models.CustomAid{}, ErrTrackedRoleRequired
	}

	title := strings.TrimSpace(input.Title)
	if title == "" || len(title) > maxAidTitleLength {
		return models.CustomAid{}, ErrTitleRequired
	}
	if !models.IsKnownProblem(strings.TrimSpace(input.Problem)) {
		return models.CustomAid{}, ErrUnknownProblem
	}

	aid := models.CustomAid{
		AccountID:   requesterID,
		Problem:     strings.TrimSpace(input.Problem),
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		IsActive:    true,
	}
	if err := service.aids.CreateCustom(&aid); err != nil {
		return models.CustomAid{}, err
	}
	return aid, nil
}

// DeactivateCustomAid toggles an aid off instead of deleting it. Idempotent:
// deactivating an already inactive aid is a no-op.
func (service *AidService) DeactivateCustomAid(requesterID uint, aidID uint) (models.CustomAid, error) {
	aid, found, err := service.aids.FindCustomByIDForAccount(aidID, requesterID)
	if err != nil {
		return models.CustomAid{}, err
	}
	if !found {
		return models.CustomAid{}, ErrAidNotFound
	}
	if !aid.IsActive {
		return aid, nil
	}

	if err := service.aids.UpdateCustomActive(aid.ID, false); err != nil {
		return models.CustomAid{}, err
	}
	aid.IsActive = false
	return aid, nil
}

func (service *AidService) ListCustomAids(requesterID uint) ([]models.CustomAid, error) {
	return service.aids.ListCustomByAccount(requesterID)
}

// CreateCuratedAid is the admin authoring path for the shared advice pool.
func (service *AidService) CreateCuratedAid(input CuratedAidInput) (models.CuratedAid, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" || len(title) > maxAidTitleLength {
		return models.CuratedAid{}, ErrTitleRequired
	}
	if !models.IsKnownProblem(strings.TrimSpace(input.Problem)) {
		return models.CuratedAid{}, ErrUnknownProblem
	}
	category := strings.TrimSpace(input.Category)
	if !models.IsKnownAidCategory(category) {
		category = models.AidCategoryComfort
	}

	aid := models.CuratedAid{
		Problem:        strings.TrimSpace(input.Problem),
		Category:       category,
		Title:          title,
		Description:    strings.TrimSpace(input.Description),
		Priority:       input.Priority,
		CreatedByAdmin: true,
		ForAccountID:   input.ForAccountID,
	}
	if err := service.aids.CreateCurated(&aid); err != nil {
		return models.CuratedAid{}, err
	}
	return aid, nil
}
