//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"crm-backend/internal/database/models"
	"crm-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// LeadRepositoryTestSuite tests the LeadRepository
type LeadRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *LeadRepository
	activity      *LeadActivityRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *LeadRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB
	suite.repo = NewLeadRepository(db)
	suite.activity = NewLeadActivityRepository(db)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *LeadRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *LeadRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *LeadRepositoryTestSuite) createLead(lead *models.Lead) *models.Lead {
	suite.Require().NoError(suite.repo.Create(suite.ctx, lead))
	return lead
}

// TestCreateDefaults tests that omitted lead fields get their defaults
func (suite *LeadRepositoryTestSuite) TestCreateDefaults() {
	lead := suite.createLead(&models.Lead{FirstName: "A", LastName: "B", Status: models.LeadStatusNew})

	found, err := suite.repo.GetByID(suite.ctx, lead.ID)
	suite.NoError(err)
	suite.Equal(models.LeadStatusNew, found.Status)
	suite.Equal(0.0, found.Value)
	suite.Nil(found.OwnerID)
}

// TestCreateWithMissingOwner tests the owner foreign key
func (suite *LeadRepositoryTestSuite) TestCreateWithMissingOwner() {
	missing := uint(777777)
	lead := suite.factories.Lead.Create()
	lead.OwnerID = &missing

	err := suite.repo.Create(suite.ctx, lead)

	suite.ErrorIs(err, gorm.ErrForeignKeyViolated)
}

// TestListFiltersAndOrder tests that list filters combine and that newest leads come first
func (suite *LeadRepositoryTestSuite) TestListFiltersAndOrder() {
	older := suite.createLead(suite.factories.Lead.WithStatus(models.LeadStatusQualified))
	suite.createLead(suite.factories.Lead.WithStatus(models.LeadStatusNew))
	newer := suite.createLead(suite.factories.Lead.WithStatus(models.LeadStatusQualified))
	referral := suite.factories.Lead.WithStatus(models.LeadStatusQualified)
	referral.Source = "referral"
	suite.createLead(referral)

	status := models.LeadStatusQualified
	source := "website"
	leads, err := suite.repo.List(suite.ctx, LeadFilter{Status: &status, Source: &source}, Page{})

	suite.NoError(err)
	suite.Require().Len(leads, 2)
	suite.Equal(newer.ID, leads[0].ID)
	suite.Equal(older.ID, leads[1].ID)

	leads, err = suite.repo.List(suite.ctx, LeadFilter{}, Page{Skip: 0, Limit: 3})
	suite.NoError(err)
	suite.Len(leads, 3)
}

// TestPartialUpdate tests that only the supplied fields change and updated_at moves forward
func (suite *LeadRepositoryTestSuite) TestPartialUpdate() {
	original := suite.createLead(suite.factories.Lead.Create())

	updated, history, err := suite.repo.Update(suite.ctx, original.ID, LeadUpdate{
		Fields: map[string]interface{}{"company": "Globex"},
	})

	suite.NoError(err)
	suite.Nil(history)
	suite.Equal("Globex", updated.Company)
	suite.Equal(original.FirstName, updated.FirstName)
	suite.Equal(original.Email, updated.Email)
	suite.Equal(original.Status, updated.Status)
	suite.True(updated.UpdatedAt.After(original.UpdatedAt))
	suite.True(updated.CreatedAt.Equal(original.CreatedAt))

	previous := updated
	for _, fields := range []map[string]interface{}{
		{"notes": "asked for pricing"},
		{"value": 1500.0},
		{"notes": "asked for pricing"},
	} {
		next, _, err := suite.repo.Update(suite.ctx, original.ID, LeadUpdate{Fields: fields})
		suite.Require().NoError(err)
		suite.True(next.UpdatedAt.After(previous.UpdatedAt))
		suite.Equal("Globex", next.Company)
		previous = next
	}
	suite.Equal("asked for pricing", previous.Notes)
	suite.Equal(1500.0, previous.Value)
}

// TestStatusChangeWritesHistory tests that status transitions are recorded in order
func (suite *LeadRepositoryTestSuite) TestStatusChangeWritesHistory() {
	lead := suite.createLead(suite.factories.Lead.Create())

	_, first, err := suite.repo.Update(suite.ctx, lead.ID, LeadUpdate{
		Fields: map[string]interface{}{"status": string(models.LeadStatusContacted)},
		Reason: "called",
	})
	suite.Require().NoError(err)
	suite.Require().NotNil(first)
	suite.Equal(models.LeadStatusNew, first.OldStatus)
	suite.Equal(models.LeadStatusContacted, first.NewStatus)

	// Same status again does not add a row
	_, none, err := suite.repo.Update(suite.ctx, lead.ID, LeadUpdate{
		Fields: map[string]interface{}{"status": string(models.LeadStatusContacted)},
	})
	suite.Require().NoError(err)
	suite.Nil(none)

	_, _, err = suite.repo.Update(suite.ctx, lead.ID, LeadUpdate{
		Fields: map[string]interface{}{"status": string(models.LeadStatusQualified)},
	})
	suite.Require().NoError(err)

	history, err := suite.activity.ListStatusHistory(suite.ctx, lead.ID)
	suite.NoError(err)
	suite.Require().Len(history, 2)
	suite.Equal(models.LeadStatusContacted, history[0].NewStatus)
	suite.Equal(models.LeadStatusQualified, history[1].NewStatus)
	suite.Equal("called", history[0].Reason)
}

// TestUpdateNotFound tests updating a nonexistent lead
func (suite *LeadRepositoryTestSuite) TestUpdateNotFound() {
	lead, history, err := suite.repo.Update(suite.ctx, 999999, LeadUpdate{
		Fields: map[string]interface{}{"company": "Nobody"},
	})

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(lead)
	suite.Nil(history)
}

// TestLeadRepositoryTestSuite runs the test suite
func TestLeadRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(LeadRepositoryTestSuite))
}
