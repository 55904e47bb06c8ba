package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yeremiapane/sangem-ordering/models"
)

const (
	globalScope       = "global"
	keyBranchNames    = "branch_names"
	keyFeaturedReview = "featured_feedback"
)

// Context is what an authenticated view works with: the session plus the
// preferences saved for it. Load it, change it, Save it.
type Context struct {
	Session     Session           `json:"session"`
	BranchNames map[string]string `json:"branch_names"`
	Featured    []uint            `json:"featured_feedback"`
}

// BranchName returns the override for id, else the reference name.
func (sc *Context) BranchName(id string) string {
	if name, ok := sc.BranchNames[id]; ok && name != "" {
		return name
	}
	if b, ok := models.FindBranch(id); ok {
		return b.Name
	}
	return id
}

func (sc *Context) IsFeatured(feedbackID uint) bool {
	for _, id := range sc.Featured {
		if id == feedbackID {
			return true
		}
	}
	return false
}

// ToggleFeatured flips feedbackID in the featured set and reports the new state.
func (sc *Context) ToggleFeatured(feedbackID uint) bool {
	for i, id := range sc.Featured {
		if id == feedbackID {
			sc.Featured = append(sc.Featured[:i], sc.Featured[i+1:]...)
			return false
		}
	}
	sc.Featured = append(sc.Featured, feedbackID)
	sort.Slice(sc.Featured, func(i, j int) bool { return sc.Featured[i] < sc.Featured[j] })
	return true
}

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (st *Store) Load(ctx context.Context, s Session) (*Context, error) {
	sc := &Context{Session: s, BranchNames: map[string]string{}, Featured: []uint{}}

	if err := st.get(ctx, globalScope, keyBranchNames, &sc.BranchNames); err != nil {
		return nil, err
	}
	if s.ID != "" {
		if err := st.get(ctx, profileScope(s.ID), keyFeaturedReview, &sc.Featured); err != nil {
			return nil, err
		}
	}
	return sc, nil
}

// LoadBranchNames is used by views without a login, e.g. the storefront.
func (st *Store) LoadBranchNames(ctx context.Context) (map[string]string, error) {
	names := map[string]string{}
	if err := st.get(ctx, globalScope, keyBranchNames, &names); err != nil {
		return nil, err
	}
	return names, nil
}

// Save writes the preferences the session is allowed to own. Branch-name
// overrides are global and only admins write them.
func (st *Store) Save(ctx context.Context, sc *Context) error {
	if sc.Session.IsAdmin() {
		if err := st.put(ctx, globalScope, keyBranchNames, sc.BranchNames); err != nil {
			return err
		}
	}
	if sc.Session.ID != "" {
		if err := st.put(ctx, profileScope(sc.Session.ID), keyFeaturedReview, sc.Featured); err != nil {
			return err
		}
	}
	return nil
}

func (st *Store) get(ctx context.Context, scope, key string, dst interface{}) error {
	var pref models.Preference
	err := st.db.WithContext(ctx).Where(&models.Preference{Scope: scope, Key: key}).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load preference %s/%s: %w", scope, key, err)
	}
	if len(pref.Value) == 0 {
		return nil
	}
	if err := json.Unmarshal(pref.Value, dst); err != nil {
		return fmt.Errorf("decode preference %s/%s: %w", scope, key, err)
	}
	return nil
}

func (st *Store) put(ctx context.Context, scope, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode preference %s/%s: %w", scope, key, err)
	}
	pref := models.Preference{Scope: scope, Key: key, Value: datatypes.JSON(raw)}
	err = st.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "scope"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&pref).Error
	if err != nil {
		return fmt.Errorf("save preference %s/%s: %w", scope, key, err)
	}
	return nil
}

func profileScope(id string) string {
	return "profile:" + id
}
