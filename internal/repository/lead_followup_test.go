//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"
	"time"

	"crm-backend/internal/database/models"
	"crm-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// LeadFollowupRepositoryTestSuite tests the LeadFollowupRepository
type LeadFollowupRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	followups     *LeadFollowupRepository
	leads         *LeadRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *LeadFollowupRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB
	suite.followups = NewLeadFollowupRepository(db)
	suite.leads = NewLeadRepository(db)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *LeadFollowupRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *LeadFollowupRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *LeadFollowupRepositoryTestSuite) createLead() *models.Lead {
	lead := suite.factories.Lead.Create()
	suite.Require().NoError(suite.leads.Create(suite.ctx, lead))
	return lead
}

// TestFollowupsOrderedByDate tests follow-up listing order
func (suite *LeadFollowupRepositoryTestSuite) TestFollowupsOrderedByDate() {
	lead := suite.createLead()
	now := time.Now().UTC()

	later := &models.LeadFollowup{LeadID: lead.ID, FollowupDate: now.Add(48 * time.Hour), Status: models.FollowupStatusScheduled}
	sooner := &models.LeadFollowup{LeadID: lead.ID, FollowupDate: now.Add(24 * time.Hour), Status: models.FollowupStatusScheduled}
	suite.Require().NoError(suite.followups.Create(suite.ctx, later))
	suite.Require().NoError(suite.followups.Create(suite.ctx, sooner))

	followups, err := suite.followups.ListByLead(suite.ctx, lead.ID)
	suite.NoError(err)
	suite.Require().Len(followups, 2)
	suite.Equal(sooner.ID, followups[0].ID)
	suite.Equal(later.ID, followups[1].ID)
}

// TestFollowupForMissingLead tests the lead foreign key on follow-ups
func (suite *LeadFollowupRepositoryTestSuite) TestFollowupForMissingLead() {
	err := suite.followups.Create(suite.ctx, &models.LeadFollowup{
		LeadID:       999999,
		FollowupDate: time.Now().UTC(),
		Status:       models.FollowupStatusScheduled,
	})

	suite.ErrorIs(err, gorm.ErrForeignKeyViolated)
}

// TestLeadFollowupRepositoryTestSuite runs the test suite
func TestLeadFollowupRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(LeadFollowupRepositoryTestSuite))
}
