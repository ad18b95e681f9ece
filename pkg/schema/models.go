// Package schema provides database schema models for osimport.
// Models cover the institutional records touched by the import pipeline:
// campuses, knowledge areas, people, sponsors, research groups and
// leadership tenures.
package schema

import (
	"time"
)

// Campus is a physical site of the institution.
// Shared across imports; the pipeline never deletes campuses and the
// schema protects them from deletion while referenced.
type Campus struct {
	ID uint `gorm:"primaryKey"`

	// Name is the human-readable campus name. Lookups are
	// case-insensitive; the stored value keeps its original casing.
	Name string `gorm:"size:255;not null;uniqueIndex"`

	// Code is a short unique identifier derived from Name on first
	// creation: uppercase, alphanumeric only, bounded length, numeric
	// suffix on collision.
	Code string `gorm:"size:12;not null;uniqueIndex"`

	// Location is an optional free-text description of the site.
	Location string `gorm:"size:255"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Campus) TableName() string { return "campuses" }

// KnowledgeArea classifies research groups by field of knowledge.
// Created on demand during import, never deleted by the pipeline.
type KnowledgeArea struct {
	ID uint `gorm:"primaryKey"`

	Name        string `gorm:"size:255;not null;uniqueIndex"`
	Description string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (KnowledgeArea) TableName() string { return "knowledge_areas" }

// Person is anyone referenced by imported records (group leaders,
// scholarship holders). Identity is resolved by email when present,
// otherwise by case-insensitive name.
type Person struct {
	ID uint `gorm:"primaryKey"`

	// UUID is a random identifier assigned on creation, used by
	// downstream consumers of the records platform.
	UUID string `gorm:"size:36;not null;uniqueIndex"`

	// FullName is the display name. It is not an identity key and may
	// be refreshed to the most recently imported value.
	FullName string `gorm:"size:255;not null;index"`

	Emails []PersonEmail `gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Person) TableName() string { return "people" }

// PersonEmail is one email address of a person. Addresses are globally
// unique; at most one address per person is flagged primary.
type PersonEmail struct {
	ID       uint `gorm:"primaryKey"`
	PersonID uint `gorm:"not null;index"`

	Address   string `gorm:"size:255;not null;uniqueIndex"`
	IsPrimary bool   `gorm:"not null;default:false"`

	CreatedAt time.Time
}

func (PersonEmail) TableName() string { return "person_emails" }

// Sponsor is an external organization demanding or funding research
// (a "demanding partner" in the source data).
type Sponsor struct {
	ID uint `gorm:"primaryKey"`

	Name string `gorm:"size:255;not null;uniqueIndex"`
	URL  string `gorm:"size:255"`

	// ContactEmail is the partner's contact address, when supplied.
	ContactEmail string `gorm:"size:255"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Sponsor) TableName() string { return "sponsors" }

// ResearchGroup is the primary record of the group import flow.
// The (short_name, campus_id) pair is unique among groups; imports treat
// an existing match as immutable, only attaching relationships.
type ResearchGroup struct {
	ID uint `gorm:"primaryKey"`

	// UUID is deterministic (UUID v5 of the normalized name), so the
	// same group imported by independent runs gets the same identifier.
	UUID string `gorm:"size:36;not null;index"`

	Name string `gorm:"size:255;not null"`

	// ShortName is the acronym; supplied in the input or generated from
	// Name and the campus code.
	ShortName string `gorm:"size:32;not null;uniqueIndex:idx_groups_short_name_campus"`

	CampusID uint   `gorm:"not null;uniqueIndex:idx_groups_short_name_campus"`
	Campus   Campus `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`

	KnowledgeAreaID uint          `gorm:"not null;index"`
	KnowledgeArea   KnowledgeArea `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`

	SponsorID *uint
	Sponsor   *Sponsor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`

	URL string `gorm:"size:255"`

	Leaderships []Leadership `gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ResearchGroup) TableName() string { return "research_groups" }

// Leadership is a time-bounded leadership tenure of a person over a
// research group. At most one active tenure exists per (group, person)
// pair; EndDate is nil while the tenure is active.
type Leadership struct {
	ID uint `gorm:"primaryKey"`

	ResearchGroupID uint `gorm:"not null;index:idx_leaderships_pair"`
	PersonID        uint `gorm:"not null;index:idx_leaderships_pair"`

	Person Person `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`

	StartDate time.Time  `gorm:"not null"`
	EndDate   *time.Time `gorm:"default:null"`
	IsActive  bool       `gorm:"not null;default:true;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Leadership) TableName() string { return "leaderships" }

// ImportRun is the persisted audit record of one import run. The
// in-memory reporter remains the interface consumed by callers; this row
// only preserves the counts for later inspection.
type ImportRun struct {
	ID uint `gorm:"primaryKey"`

	Flow   string `gorm:"size:64;not null"`
	Status string `gorm:"size:16;not null;default:'running'"`

	RowsTotal     uint `gorm:"not null;default:0"`
	RowsSucceeded uint `gorm:"not null;default:0"`
	RowsSkipped   uint `gorm:"not null;default:0"`
	RowsFailed    uint `gorm:"not null;default:0"`

	ErrorMessage *string `gorm:"type:text"`

	StartedAt  time.Time `gorm:"not null"`
	FinishedAt *time.Time
}

func (ImportRun) TableName() string { return "import_runs" }

// ImportRun status values.
const (
	ImportRunStatusRunning = "running"
	ImportRunStatusSuccess = "success"
	ImportRunStatusFailed  = "failed"
)
