package ioimport

import (
	"errors"
	"time"

	"github.com/onestep/osimport/pkg/schema"
	"gorm.io/gorm"
)

// AssignLeader records a leadership tenure of a person over a research
// group. When an active tenure for the pair already exists it is
// returned unchanged, so re-imports attach nothing twice.
func AssignLeader(
	tx *gorm.DB,
	group *schema.ResearchGroup,
	person *schema.Person,
	start time.Time,
) (*schema.Leadership, error) {
	var existing schema.Leadership
	err := tx.Where(
		"research_group_id = ? AND person_id = ? AND is_active = ?",
		group.ID, person.ID, true,
	).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, LeadershipError(person.FullName, err)
	}

	tenure := &schema.Leadership{
		ResearchGroupID: group.ID,
		PersonID:        person.ID,
		StartDate:       start,
		IsActive:        true,
	}
	err = tx.Create(tenure).Error
	if err != nil {
		return nil, LeadershipError(person.FullName, err)
	}
	return tenure, nil
}

// ReleaseLeader ends the active tenure of a person over a group. With
// no active tenure it is a no-op, so releasing twice is harmless. An
// end date before the tenure's start date is rejected.
func ReleaseLeader(
	tx *gorm.DB,
	group *schema.ResearchGroup,
	person *schema.Person,
	end time.Time,
) error {
	var tenure schema.Leadership
	err := tx.Where(
		"research_group_id = ? AND person_id = ? AND is_active = ?",
		group.ID, person.ID, true,
	).First(&tenure).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return LeadershipError(person.FullName, err)
	}

	if end.Before(tenure.StartDate) {
		return TenureDatesError(person.FullName, tenure.StartDate, end)
	}

	err = tx.Model(&tenure).Updates(map[string]any{
		"end_date":  end,
		"is_active": false,
	}).Error
	if err != nil {
		return LeadershipError(person.FullName, err)
	}
	return nil
}
