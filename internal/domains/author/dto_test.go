package author

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorRequestValidate(t *testing.T) {
	valid := AuthorRequest{
		Name:      "Haruki Murakami",
		BirthDate: NewDate(1949, time.January, 12),
	}

	t.Run("valid request passes", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("blank name", func(t *testing.T) {
		req := valid
		req.Name = ""
		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name must not be blank")
	})

	t.Run("missing birth date", func(t *testing.T) {
		req := valid
		req.BirthDate = Date{}
		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "birthDate must not be null")
	})

	t.Run("future birth date", func(t *testing.T) {
		req := valid
		req.BirthDate = DateOf(time.Now().AddDate(1, 0, 0))
		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "birthDate must be a past date")
	})
}

func TestAuthorRequestValidateUpdate(t *testing.T) {
	id := int64(42)
	valid := AuthorRequest{
		ID:        &id,
		Name:      "Haruki Murakami",
		BirthDate: NewDate(1949, time.January, 12),
	}

	t.Run("valid update passes", func(t *testing.T) {
		assert.NoError(t, valid.ValidateUpdate())
	})

	t.Run("missing id", func(t *testing.T) {
		req := valid
		req.ID = nil
		err := req.ValidateUpdate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "id must not be null")
	})

	t.Run("field rules still apply", func(t *testing.T) {
		req := valid
		req.Name = ""
		assert.Error(t, req.ValidateUpdate())
	})
}

func TestAuthorRequestToModel(t *testing.T) {
	id := int64(7)
	req := AuthorRequest{
		ID:        &id,
		Name:      "Banana Yoshimoto",
		BirthDate: NewDate(1964, time.July, 24),
	}

	a := req.ToModel()
	assert.Equal(t, int64(7), a.ID)
	assert.Equal(t, "Banana Yoshimoto", a.Name)
	assert.Equal(t, "1964-07-24", a.BirthDate.String())

	req.ID = nil
	assert.Zero(t, req.ToModel().ID)
}

func TestDateJSON(t *testing.T) {
	a := Author{
		ID:        1,
		Name:      "Haruki Murakami",
		BirthDate: NewDate(1949, time.January, 12),
	}

	data, err := json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"Haruki Murakami","birthDate":"1949-01-12"}`, string(data))

	var req AuthorRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"X","birthDate":"1949-01-12"}`), &req))
	assert.Equal(t, NewDate(1949, time.January, 12), req.BirthDate)

	err = json.Unmarshal([]byte(`{"birthDate":"12-01-1949"}`), &req)
	assert.Error(t, err)
}
