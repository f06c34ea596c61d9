package mask_test

import (
	"testing"

	"github.com/rise-and-shine/userbook/domain"
	"github.com/rise-and-shine/userbook/mask"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructToOrdMap_NilInput(t *testing.T) {
	assert.Nil(t, mask.StructToOrdMap(nil))
}

func TestStructToOrdMap_User(t *testing.T) {
	u := domain.User{
		ID:      1,
		Name:    "Leanne Graham",
		Email:   "Sincere@april.biz",
		Phone:   "",
		Website: "hildegard.org",
		Company: domain.Company{Name: "Romaguera-Crona", CatchPhrase: "Multi-layered client-server neural-net"},
		Address: domain.Address{Street: "Kulas Light", City: "Gwenborough", Zipcode: "92998-3874"},
	}

	result := mask.StructToOrdMap(&u)
	require.NotNil(t, result)

	keys := make([]string, 0, result.Len())
	for pair := result.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	assert.Equal(t, []string{
		"id", "name", "email", "phone", "website",
		"company.name", "company.catch_phrase",
		"address.street", "address.city", "address.zipcode",
	}, keys)

	email, _ := result.Get("email")
	assert.Equal(t, mask.Placeholder, email)

	phone, _ := result.Get("phone")
	assert.Empty(t, phone, "zero values stay visible")

	city, _ := result.Get("address.city")
	assert.Equal(t, "Gwenborough", city)

	zip, _ := result.Get("address.zipcode")
	assert.Equal(t, mask.Placeholder, zip)
}

func TestStructToOrdMap_SkipsIgnoredAndUnexported(t *testing.T) {
	type payload struct {
		Visible string `json:"visible"`
		Hidden  string `json:"-"`
		secret  string
	}

	result := mask.StructToOrdMap(payload{Visible: "a", Hidden: "b", secret: "c"})

	assert.Equal(t, 1, result.Len())
	v, ok := result.Get("visible")
	assert.True(t, ok)
	assert.Equal(t, "a", v)
}

func TestSlice(t *testing.T) {
	users := []domain.User{{ID: 1, Email: "a@b.c"}, {ID: 2}}

	result := mask.Slice(users)

	require.Len(t, result, 2)
	id, _ := result[1].Get("id")
	assert.Equal(t, 2, id)
	email, _ := result[0].Get("email")
	assert.Equal(t, mask.Placeholder, email)
}
