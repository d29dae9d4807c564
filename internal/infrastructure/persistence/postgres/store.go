package postgres

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"github.com/rafabene/casadf-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/casadf-backend/internal/domain/errors"
)

// store reúne as operações comuns a todas as tabelas
type store[T any] struct {
	h     Handle
	table string
}

func newStore[T any](h Handle, table string) store[T] {
	return store[T]{h: h, table: table}
}

func (s store[T]) db(ctx context.Context) (*gorm.DB, error) {
	return s.h.DB(ctx)
}

// create valida e insere a linha, preenchendo id e colunas com default
func (s store[T]) create(ctx context.Context, v *T) error {
	if err := entities.Validate(v); err != nil {
		return err
	}
	db, err := s.db(ctx)
	if err != nil {
		return err
	}
	return translateError("create "+s.table, db.Create(v).Error)
}

// update aplica somente os campos não nulos do patch. Sem linha correspondente é no-op.
func (s store[T]) update(ctx context.Context, id int64, patch any) error {
	if err := entities.Validate(patch); err != nil {
		return err
	}
	db, err := s.db(ctx)
	if err != nil {
		return err
	}

	values := patchValues(patch)
	if len(values) == 0 {
		return nil
	}

	result := db.Model(new(T)).Where("id = ?", id).Updates(values)
	return translateError("update "+s.table, result.Error)
}

// delete remove a linha. Sem linha correspondente é no-op.
func (s store[T]) delete(ctx context.Context, id int64) error {
	db, err := s.db(ctx)
	if err != nil {
		return err
	}
	return translateError("delete "+s.table, db.Where("id = ?", id).Delete(new(T)).Error)
}

func (s store[T]) findByID(ctx context.Context, id int64) (*T, error) {
	return s.first(ctx, "id = ?", id)
}

// first retorna nil, nil quando nada casa
func (s store[T]) first(ctx context.Context, query string, args ...any) (*T, error) {
	db, err := s.db(ctx)
	if err != nil {
		return nil, err
	}

	var v T
	if err := db.Where(query, args...).Take(&v).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateError("find "+s.table, err)
	}
	return &v, nil
}

// list executa a consulta montada por scope, em ordem de criação decrescente
func (s store[T]) list(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]*T, error) {
	db, err := s.db(ctx)
	if err != nil {
		return nil, err
	}

	query := db.Model(new(T))
	if scope != nil {
		query = scope(query)
	}

	var rows []*T
	if err := query.Order("created_at DESC").Order("id DESC").Find(&rows).Error; err != nil {
		return nil, translateError("list "+s.table, err)
	}
	return rows, nil
}

// patchValues converte um struct de patch (campos ponteiro com tag gorm column)
// em um mapa coluna -> valor com apenas os campos informados.
func patchValues(patch any) map[string]any {
	rv := reflect.Indirect(reflect.ValueOf(patch))
	if rv.Kind() != reflect.Struct {
		panic(fmt.Sprintf("patchValues: expected struct, got %s", rv.Kind()))
	}

	rt := rv.Type()
	values := make(map[string]any, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		column := schema.ParseTagSetting(field.Tag.Get("gorm"), ";")["COLUMN"]
		if column == "" || !field.IsExported() {
			continue
		}

		fv := rv.Field(i)
		if fv.Kind() != reflect.Pointer || fv.IsNil() {
			continue
		}
		values[column] = fv.Elem().Interface()
	}
	return values
}

type enum interface {
	~string
	IsValid() bool
}

// checkEnum aceita o valor vazio (filtro ausente) ou um valor conhecido
func checkEnum[E enum](field string, value E) error {
	if value == "" || value.IsValid() {
		return nil
	}
	return domainerrors.NewValidationError(field, fmt.Sprintf("has unknown value %q", string(value)))
}

// applyPatch copia os campos informados do patch para o campo de mesmo nome em dst
func applyPatch(dst any, patch any) {
	dv := reflect.ValueOf(dst).Elem()
	pv := reflect.Indirect(reflect.ValueOf(patch))
	pt := pv.Type()
	for i := 0; i < pt.NumField(); i++ {
		fv := pv.Field(i)
		if fv.Kind() != reflect.Pointer || fv.IsNil() {
			continue
		}
		target := dv.FieldByName(pt.Field(i).Name)
		if !target.IsValid() || !target.CanSet() {
			continue
		}
		if target.Type() == fv.Type() {
			target.Set(fv)
		} else if target.Type() == fv.Elem().Type() {
			target.Set(fv.Elem())
		}
	}
}
