package ioimport

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gnames/gnuuid"
	"github.com/onestep/osimport/internal/iocsv"
	"github.com/onestep/osimport/internal/ioresolve"
	"github.com/onestep/osimport/pkg/acronym"
	"github.com/onestep/osimport/pkg/flows"
	"github.com/onestep/osimport/pkg/report"
	"github.com/onestep/osimport/pkg/rowcheck"
	"github.com/onestep/osimport/pkg/schema"
	"gorm.io/gorm"
)

// groupHandler persists research group rows: the group itself plus the
// campus, knowledge area, optional sponsor and leadership tenures it
// references.
type groupHandler struct {
	flow flows.Flow
	res  *ioresolve.Resolvers
}

func (h *groupHandler) handle(
	tx *gorm.DB, row iocsv.Row,
) (report.Status, string, error) {
	f := h.flow

	name := ioresolve.Normalize(f.Value(row.Fields, flows.ColName))

	campus, err := h.res.Campus(tx, f.Value(row.Fields, flows.ColCampus))
	if err != nil {
		return report.Failed, "", err
	}
	area, err := h.res.KnowledgeArea(
		tx, f.Value(row.Fields, flows.ColKnowledgeArea))
	if err != nil {
		return report.Failed, "", err
	}

	var sponsorID *uint
	if s := f.Value(row.Fields, flows.ColSponsor); s != "" {
		sponsor, err := h.res.Sponsor(tx, s, "", "")
		if err != nil {
			return report.Failed, "", err
		}
		sponsorID = &sponsor.ID
	}

	shortName := ioresolve.Normalize(f.Value(row.Fields, flows.ColShortName))
	if shortName == "" {
		shortName = acronym.Generate(name, campus.Code)
	}

	// The leaders column was already checked; parse errors cannot
	// surface here.
	leaders, _ := rowcheck.ParseMembers(f.Value(row.Fields, flows.ColLeaders))

	start := time.Now()
	if v := f.Value(row.Fields, flows.ColStartDate); v != "" {
		start, err = rowcheck.ParseDate(v)
		if err != nil {
			return report.Failed, "", err
		}
	}

	group, created, err := h.getOrCreateGroup(
		tx, name, shortName, campus, area, sponsorID,
		f.Value(row.Fields, flows.ColURL))
	if err != nil {
		return report.Failed, "", err
	}

	// Leaders attach on both paths; attaching is idempotent, so an
	// existing group gains only the tenures it does not have yet.
	for _, m := range leaders {
		person, err := h.res.Person(tx, m)
		if err != nil {
			return report.Failed, "", err
		}
		_, err = AssignLeader(tx, group, person, start)
		if err != nil {
			return report.Failed, "", err
		}
	}

	if !created {
		msg := fmt.Sprintf(
			"research group %q already exists at campus %q",
			group.ShortName, campus.Name)
		return report.Skipped, msg, nil
	}
	return report.Succeeded, "", nil
}

// getOrCreateGroup looks up the group by its (short name, campus)
// identity and creates it on a miss. The insert runs in a savepoint; on
// a uniqueness conflict the winner is fetched once and the row counts
// as a duplicate.
func (h *groupHandler) getOrCreateGroup(
	tx *gorm.DB,
	name, shortName string,
	campus *schema.Campus,
	area *schema.KnowledgeArea,
	sponsorID *uint,
	url string,
) (*schema.ResearchGroup, bool, error) {
	find := func() (*schema.ResearchGroup, bool, error) {
		var g schema.ResearchGroup
		err := tx.Where(
			"LOWER(short_name) = ? AND campus_id = ?",
			strings.ToLower(shortName), campus.ID,
		).First(&g).Error
		if err == nil {
			return &g, true, nil
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}

	g, ok, err := find()
	if err != nil {
		return nil, false, GroupLookupError(shortName, err)
	}
	if ok {
		return g, false, nil
	}

	group := &schema.ResearchGroup{
		UUID:            gnuuid.New(strings.ToLower(name)).String(),
		Name:            name,
		ShortName:       shortName,
		CampusID:        campus.ID,
		KnowledgeAreaID: area.ID,
		SponsorID:       sponsorID,
		URL:             url,
	}
	err = tx.Transaction(func(stx *gorm.DB) error {
		return stx.Create(group).Error
	})
	if err == nil {
		return group, true, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, false, GroupSaveError(shortName, err)
	}

	g, ok, err = find()
	if err != nil {
		return nil, false, GroupLookupError(shortName, err)
	}
	if !ok {
		return nil, false, GroupSaveError(
			shortName, errors.New("conflicting group vanished on re-fetch"))
	}
	return g, false, nil
}
