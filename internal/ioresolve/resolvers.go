package ioresolve

import (
	"strings"

	"github.com/google/uuid"
	"github.com/onestep/osimport/pkg/rowcheck"
	"github.com/onestep/osimport/pkg/schema"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// Cache entity kinds.
const (
	kindCampus  = "campus"
	kindArea    = "knowledge area"
	kindPerson  = "person"
	kindSponsor = "sponsor"
)

// Resolvers holds the run-scoped state shared by all entity resolvers:
// the cache and the name caser. One Resolvers value serves one run.
type Resolvers struct {
	cache *Cache
	title cases.Caser

	// beforeCreate, when set, runs between the lookup and the insert.
	// Tests use it to force the conflict path deterministically.
	beforeCreate func(kind string)
}

func New() *Resolvers {
	return &Resolvers{
		cache: newCache(),
		title: cases.Title(language.BrazilianPortuguese),
	}
}

// Commit promotes the entities resolved by the current row into the
// run-wide cache. Call it after the row transaction commits.
func (r *Resolvers) Commit() { r.cache.commit() }

// Discard drops the entities resolved by the current row. Call it when
// the row transaction rolls back, so the cache never points at records
// the rollback erased.
func (r *Resolvers) Discard() { r.cache.discard() }

// Campus resolves a campus by case-insensitive name, creating it with a
// derived unique code on first sight.
func (r *Resolvers) Campus(
	tx *gorm.DB, name string,
) (*schema.Campus, error) {
	name = Normalize(name)
	key := strings.ToLower(name)
	if c, ok := cacheGet[schema.Campus](r.cache, kindCampus, key); ok {
		return c, nil
	}

	find := func() (*schema.Campus, bool, error) {
		return findOne[schema.Campus](tx, "LOWER(name) = ?", key)
	}
	create := func(stx *gorm.DB) (*schema.Campus, error) {
		code, err := freeCode(stx, name)
		if err != nil {
			return nil, err
		}
		if r.beforeCreate != nil {
			r.beforeCreate(kindCampus)
		}
		c := &schema.Campus{Name: name, Code: code}
		err = stx.Create(c).Error
		if err != nil {
			return nil, err
		}
		return c, nil
	}

	c, err := getOrCreate(tx, kindCampus, name, find, create)
	if err != nil {
		return nil, err
	}
	r.cache.put(kindCampus, key, c)
	return c, nil
}

// KnowledgeArea resolves a knowledge area by case-insensitive name.
func (r *Resolvers) KnowledgeArea(
	tx *gorm.DB, name string,
) (*schema.KnowledgeArea, error) {
	name = Normalize(name)
	key := strings.ToLower(name)
	if ka, ok := cacheGet[schema.KnowledgeArea](r.cache, kindArea, key); ok {
		return ka, nil
	}

	find := func() (*schema.KnowledgeArea, bool, error) {
		return findOne[schema.KnowledgeArea](tx, "LOWER(name) = ?", key)
	}
	create := func(stx *gorm.DB) (*schema.KnowledgeArea, error) {
		if r.beforeCreate != nil {
			r.beforeCreate(kindArea)
		}
		ka := &schema.KnowledgeArea{Name: name}
		err := stx.Create(ka).Error
		if err != nil {
			return nil, err
		}
		return ka, nil
	}

	ka, err := getOrCreate(tx, kindArea, name, find, create)
	if err != nil {
		return nil, err
	}
	r.cache.put(kindArea, key, ka)
	return ka, nil
}

// Sponsor resolves a sponsor by case-insensitive name. URL and contact
// email fill in on creation only; an existing sponsor keeps its fields.
func (r *Resolvers) Sponsor(
	tx *gorm.DB, name, url, contactEmail string,
) (*schema.Sponsor, error) {
	name = Normalize(name)
	key := strings.ToLower(name)
	if s, ok := cacheGet[schema.Sponsor](r.cache, kindSponsor, key); ok {
		return s, nil
	}

	find := func() (*schema.Sponsor, bool, error) {
		return findOne[schema.Sponsor](tx, "LOWER(name) = ?", key)
	}
	create := func(stx *gorm.DB) (*schema.Sponsor, error) {
		if r.beforeCreate != nil {
			r.beforeCreate(kindSponsor)
		}
		s := &schema.Sponsor{Name: name, URL: url, ContactEmail: contactEmail}
		err := stx.Create(s).Error
		if err != nil {
			return nil, err
		}
		return s, nil
	}

	s, err := getOrCreate(tx, kindSponsor, name, find, create)
	if err != nil {
		return nil, err
	}
	r.cache.put(kindSponsor, key, s)
	return s, nil
}

// Person resolves a person from a parsed member. Identity is the email
// when present, else the case-insensitive name. The display name is not
// an identity key, so an email match refreshes it to the supplied
// value.
func (r *Resolvers) Person(
	tx *gorm.DB, m rowcheck.Member,
) (*schema.Person, error) {
	name := r.title.String(strings.ToLower(Normalize(m.Name)))
	email := strings.ToLower(strings.TrimSpace(m.Email))

	if email != "" {
		return r.personByEmail(tx, name, email)
	}
	return r.personByName(tx, name)
}

func (r *Resolvers) personByEmail(
	tx *gorm.DB, name, email string,
) (*schema.Person, error) {
	if p, ok := cacheGet[schema.Person](r.cache, kindPerson, email); ok {
		return p, r.refreshName(tx, p, name, email)
	}

	find := func() (*schema.Person, bool, error) {
		pe, ok, err := findOne[schema.PersonEmail](
			tx, "LOWER(address) = ?", email)
		if err != nil || !ok {
			return nil, false, err
		}
		var p schema.Person
		err = tx.First(&p, pe.PersonID).Error
		if err != nil {
			return nil, false, err
		}
		return &p, true, nil
	}
	create := func(stx *gorm.DB) (*schema.Person, error) {
		if r.beforeCreate != nil {
			r.beforeCreate(kindPerson)
		}
		p := &schema.Person{
			UUID:     uuid.NewString(),
			FullName: name,
			Emails: []schema.PersonEmail{
				{Address: email, IsPrimary: true},
			},
		}
		err := stx.Create(p).Error
		if err != nil {
			return nil, err
		}
		return p, nil
	}

	p, err := getOrCreate(tx, kindPerson, email, find, create)
	if err != nil {
		return nil, err
	}

	err = r.refreshName(tx, p, name, email)
	if err != nil {
		return nil, err
	}

	r.cache.put(kindPerson, email, p)
	return p, nil
}

func (r *Resolvers) refreshName(
	tx *gorm.DB, p *schema.Person, name, email string,
) error {
	if name == "" || p.FullName == name {
		return nil
	}
	err := tx.Model(p).Update("full_name", name).Error
	if err != nil {
		return createError(kindPerson, email, err)
	}
	p.FullName = name
	return nil
}

func (r *Resolvers) personByName(
	tx *gorm.DB, name string,
) (*schema.Person, error) {
	key := "name:" + strings.ToLower(name)
	if p, ok := cacheGet[schema.Person](r.cache, kindPerson, key); ok {
		return p, nil
	}

	find := func() (*schema.Person, bool, error) {
		return findOne[schema.Person](
			tx, "LOWER(full_name) = ?", strings.ToLower(name))
	}
	create := func(stx *gorm.DB) (*schema.Person, error) {
		if r.beforeCreate != nil {
			r.beforeCreate(kindPerson)
		}
		p := &schema.Person{UUID: uuid.NewString(), FullName: name}
		err := stx.Create(p).Error
		if err != nil {
			return nil, err
		}
		return p, nil
	}

	p, err := getOrCreate(tx, kindPerson, name, find, create)
	if err != nil {
		return nil, err
	}
	r.cache.put(kindPerson, key, p)
	return p, nil
}
