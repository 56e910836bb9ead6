package reqtypeprovider

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"it-requests-backend/db"
	"it-requests-backend/lib/dicts/dictcache"
	"it-requests-backend/lib/dicts/reqtype/store"
	dictapimodels "it-requests-backend/models/api/dict"
	dbmodels "it-requests-backend/models/db"
)

const cacheKey = "dict:request_types"

type Provider interface {
	Create(request dictapimodels.RequestTypeData) (id int, err error)
	Update(id int, request dictapimodels.RequestTypeData) error
	Get(id int) (item dictapimodels.RequestTypeView, err error)
	List() (list []dictapimodels.RequestTypeView, err error)
	Options(ctx context.Context) (list []dictapimodels.Option, err error)
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

func (i impl) Create(request dictapimodels.RequestTypeData) (id int, err error) {
	rec := dbmodels.RequestType{
		Name:       request.Name,
		CodePrefix: request.CodePrefix,
		Enabled:    true,
	}
	if request.Enabled != nil {
		rec.Enabled = *request.Enabled
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return 0, err
	}
	i.cache.Invalidate(context.Background(), cacheKey)
	log.
		WithField("type_name", rec.Name).
		WithField("rec_id", id).
		Info("request type created")
	return id, nil
}

func (i impl) Update(id int, request dictapimodels.RequestTypeData) error {
	updMap := map[string]interface{}{
		"name":        request.Name,
		"code_prefix": request.CodePrefix,
	}
	if request.Enabled != nil {
		updMap["enabled"] = *request.Enabled
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	i.cache.Invalidate(context.Background(), cacheKey)
	log.WithField("rec_id", id).Info("request type updated")
	return nil
}

func (i impl) Get(id int) (item dictapimodels.RequestTypeView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.RequestTypeView{}, err
	}
	if rec == nil {
		return dictapimodels.RequestTypeView{}, errors.New("request type not found")
	}
	return dictapimodels.RequestTypeConvert(*rec), nil
}

func (i impl) List() (list []dictapimodels.RequestTypeView, err error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	list = make([]dictapimodels.RequestTypeView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, dictapimodels.RequestTypeConvert(rec))
	}
	return list, nil
}

func (i impl) Options(ctx context.Context) (list []dictapimodels.Option, err error) {
	if cached, ok := i.cache.GetOptions(ctx, cacheKey); ok {
		return cached, nil
	}
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	list = make([]dictapimodels.Option, 0, len(recList))
	for _, rec := range recList {
		list = append(list, dictapimodels.Option{ID: rec.ID, Name: rec.Name})
	}
	i.cache.SetOptions(ctx, cacheKey, list)
	return list, nil
}

func (i impl) Delete(id int) error {
	err := i.store.Delete(id)
	if err != nil {
		return err
	}
	i.cache.Invalidate(context.Background(), cacheKey)
	log.WithField("rec_id", id).Info("request type deleted")
	return nil
}
