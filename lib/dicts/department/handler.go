package departmentprovider

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"it-requests-backend/db"
	"it-requests-backend/lib/dicts/department/store"
	"it-requests-backend/lib/dicts/dictcache"
	dictapimodels "it-requests-backend/models/api/dict"
	dbmodels "it-requests-backend/models/db"
)

const (
	cacheKeyAll = "dict:departments"
	cacheKeyIT  = "dict:departments_it"
)

type Provider interface {
	Create(request dictapimodels.DepartmentData) (id int, err error)
	Update(id int, request dictapimodels.DepartmentData) error
	Get(id int) (item dictapimodels.DepartmentView, err error)
	Find(request dictapimodels.DepartmentFind) (list []dictapimodels.DepartmentView, err error)
	Options(ctx context.Context, itOnly bool) (list []dictapimodels.Option, err error)
	Delete(id int) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: store.NewInstance(db.DB),
		cache: dictcache.Instance,
	}
}

type impl struct {
	store store.Provider
	cache dictcache.Provider
}

func (i impl) Create(request dictapimodels.DepartmentData) (id int, err error) {
	rec := dbmodels.Department{
		Name:                 request.Name,
		IsIT:                 request.IsIT,
		DivisionCompetencyID: request.DivisionCompetencyID,
		SectionCompetencyID:  request.SectionCompetencyID,
		Enabled:              true,
	}
	if request.Enabled != nil {
		rec.Enabled = *request.Enabled
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return 0, err
	}
	i.invalidate()
	log.
		WithField("department_name", rec.Name).
		WithField("rec_id", id).
		Info("department created")
	return id, nil
}

func (i impl) Update(id int, request dictapimodels.DepartmentData) error {
	updMap := map[string]interface{}{
		"name":                   request.Name,
		"is_it":                  request.IsIT,
		"division_competency_id": request.DivisionCompetencyID,
		"section_competency_id":  request.SectionCompetencyID,
	}
	if request.Enabled != nil {
		updMap["enabled"] = *request.Enabled
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	i.invalidate()
	log.WithField("rec_id", id).Info("department updated")
	return nil
}

func (i impl) Get(id int) (item dictapimodels.DepartmentView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.DepartmentView{}, err
	}
	if rec == nil {
		return dictapimodels.DepartmentView{}, errors.New("department not found")
	}
	return dictapimodels.DepartmentConvert(*rec), nil
}

func (i impl) Find(request dictapimodels.DepartmentFind) (list []dictapimodels.DepartmentView, err error) {
	recList, err := i.store.Find(strings.ToLower(request.Name), request.ITOnly)
	if err != nil {
		return nil, err
	}
	list = make([]dictapimodels.DepartmentView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, dictapimodels.DepartmentConvert(rec))
	}
	return list, nil
}

func (i impl) Options(ctx context.Context, itOnly bool) (list []dictapimodels.Option, err error) {
	key := cacheKeyAll
	if itOnly {
		key = cacheKeyIT
	}
	if cached, ok := i.cache.GetOptions(ctx, key); ok {
		return cached, nil
	}
	recList, err := i.store.Find("", itOnly)
	if err != nil {
		return nil, err
	}
	list = make([]dictapimodels.Option, 0, len(recList))
	for _, rec := range recList {
		list = append(list, dictapimodels.Option{ID: rec.ID, Name: rec.Name})
	}
	i.cache.SetOptions(ctx, key, list)
	return list, nil
}

func (i impl) Delete(id int) error {
	err := i.store.Delete(id)
	if err != nil {
		return err
	}
	i.invalidate()
	log.WithField("rec_id", id).Info("department deleted")
	return nil
}

func (i impl) invalidate() {
	ctx := context.Background()
	i.cache.Invalidate(ctx, cacheKeyAll)
	i.cache.Invalidate(ctx, cacheKeyIT)
}
