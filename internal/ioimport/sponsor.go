package ioimport

import (
	"errors"
	"fmt"
	"strings"

	"github.com/onestep/osimport/internal/iocsv"
	"github.com/onestep/osimport/internal/ioresolve"
	"github.com/onestep/osimport/pkg/flows"
	"github.com/onestep/osimport/pkg/report"
	"github.com/onestep/osimport/pkg/schema"
	"gorm.io/gorm"
)

// sponsorHandler persists sponsor rows. Sponsors are primary records in
// this flow: an existing name is a duplicate, not a reference.
type sponsorHandler struct {
	flow flows.Flow
}

func (h *sponsorHandler) handle(
	tx *gorm.DB, row iocsv.Row,
) (report.Status, string, error) {
	f := h.flow

	name := ioresolve.Normalize(f.Value(row.Fields, flows.ColName))

	find := func() (*schema.Sponsor, bool, error) {
		var s schema.Sponsor
		err := tx.Where(
			"LOWER(name) = ?", strings.ToLower(name)).First(&s).Error
		if err == nil {
			return &s, true, nil
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}

	s, ok, err := find()
	if err != nil {
		return report.Failed, "", SponsorLookupError(name, err)
	}
	if ok {
		return report.Skipped,
			fmt.Sprintf("sponsor %q already exists", s.Name), nil
	}

	sponsor := &schema.Sponsor{
		Name:         name,
		URL:          f.Value(row.Fields, flows.ColURL),
		ContactEmail: f.Value(row.Fields, flows.ColContactEmail),
	}
	err = tx.Transaction(func(stx *gorm.DB) error {
		return stx.Create(sponsor).Error
	})
	if err == nil {
		return report.Succeeded, "", nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return report.Failed, "", SponsorSaveError(name, err)
	}

	s, ok, err = find()
	if err != nil {
		return report.Failed, "", SponsorLookupError(name, err)
	}
	if !ok {
		return report.Failed, "", SponsorSaveError(
			name, errors.New("conflicting sponsor vanished on re-fetch"))
	}
	return report.Skipped,
		fmt.Sprintf("sponsor %q already exists", s.Name), nil
}
