package content

import (
	"testing"

	"codabs/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type fakeCategoryRepo struct {
	cats []models.Category
}

func (r *fakeCategoryRepo) Insert(doc interface{}) error {
	r.cats = append(r.cats, *doc.(*models.Category))
	return nil
}

func (r *fakeCategoryRepo) FindByID(id string, dest interface{}) (bool, error) {
	for _, c := range r.cats {
		if c.ID == id {
			*dest.(*models.Category) = c
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCategoryRepo) FindOne(filter bson.M, dest interface{}) (bool, error) {
	name, _ := filter["name"].(string)
	for _, c := range r.cats {
		if c.Name == name {
			*dest.(*models.Category) = c
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCategoryRepo) FindAll(filter bson.M, opts *options.FindOptions, dest interface{}) error {
	*dest.(*[]models.Category) = append([]models.Category(nil), r.cats...)
	return nil
}

func (r *fakeCategoryRepo) Count(filter bson.M) (int64, error) {
	return int64(len(r.cats)), nil
}

func (r *fakeCategoryRepo) UpdateSet(id string, set bson.M) (bool, error) {
	for i := range r.cats {
		if r.cats[i].ID != id {
			continue
		}
		if name, ok := set["name"].(string); ok {
			r.cats[i].Name = name
		}
		if desc, ok := set["description"].(string); ok {
			r.cats[i].Description = desc
		}
		return true, nil
	}
	return false, nil
}

func (r *fakeCategoryRepo) Delete(id string) (bool, error) {
	for i := range r.cats {
		if r.cats[i].ID == id {
			r.cats = append(r.cats[:i], r.cats[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func TestCategoryCreate(t *testing.T) {
	svc := &DefaultCategoryService{Repo: &fakeCategoryRepo{}}

	cat, err := svc.Create("Roofing", "Roof installation and repair")
	require.NoError(t, err)

	assert.NotEmpty(t, cat.ID)
	assert.Equal(t, "Roofing", cat.Name)
	assert.False(t, cat.CreatedAt.IsZero())
}

func TestCategoryCreate_RequiresFields(t *testing.T) {
	svc := &DefaultCategoryService{Repo: &fakeCategoryRepo{}}

	_, err := svc.Create("", "desc")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = svc.Create("Roofing", "")
	require.ErrorAs(t, err, &verr)
}

func TestCategoryCreate_DuplicateName(t *testing.T) {
	repo := &fakeCategoryRepo{}
	svc := &DefaultCategoryService{Repo: repo}

	_, err := svc.Create("Roofing", "first")
	require.NoError(t, err)

	_, err = svc.Create("Roofing", "second")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, repo.cats, 1)
}

func TestCategoryUpdate_NotFound(t *testing.T) {
	svc := &DefaultCategoryService{Repo: &fakeCategoryRepo{}}

	_, err := svc.Update("missing", "New name", "")
	var nerr *NotFoundError
	require.ErrorAs(t, err, &nerr)
}

func TestCategoryUpdateAndDelete(t *testing.T) {
	repo := &fakeCategoryRepo{}
	svc := &DefaultCategoryService{Repo: repo}

	cat, err := svc.Create("Roofing", "desc")
	require.NoError(t, err)

	updated, err := svc.Update(cat.ID, "Roofing & Gutters", "")
	require.NoError(t, err)
	assert.Equal(t, "Roofing & Gutters", updated.Name)
	assert.Equal(t, "desc", updated.Description)

	require.NoError(t, svc.Delete(cat.ID))
	assert.Empty(t, repo.cats)

	var nerr *NotFoundError
	require.ErrorAs(t, svc.Delete(cat.ID), &nerr)
}
