package usecase_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pranshau/Rating-App/internal/application/usecase"
	"github.com/Pranshau/Rating-App/internal/domain"
	"github.com/Pranshau/Rating-App/internal/domain/entity"
)

// IDs de tienda con forma de UUID: los casos de uso cortan cualquier id que no
// lo sea antes de tocar la persistencia.
const (
	tiendaA       = "11111111-1111-1111-1111-111111111111"
	tiendaVacia   = "33333333-3333-3333-3333-333333333333"
	tiendaAjena   = "44444444-4444-4444-4444-444444444444"
	tiendaAusente = "99999999-9999-9999-9999-999999999999"
)

func buildRatingUseCase(t *testing.T) (*usecase.RatingUseCase, *fakeStoreRepo, *fakeRatingRepo) {
	t.Helper()
	stores := newFakeStoreRepo()
	ratings := newFakeRatingRepo()
	return usecase.NewRatingUseCase(stores, ratings), stores, ratings
}

func seedStore(stores *fakeStoreRepo, id, ownerID string) {
	stores.byID[id] = &entity.Store{ID: id, Name: "Tienda " + id[:8], OwnerID: ownerID, CreatedAt: time.Now()}
}

// Valores fuera de [1,5] se rechazan antes de tocar la persistencia.
func TestSubmit_ValorFueraDeRango(t *testing.T) {
	uc, stores, ratings := buildRatingUseCase(t)
	seedStore(stores, tiendaA, "")

	for _, value := range []int{0, 6, -1, 100} {
		_, err := uc.Submit("u1", tiendaA, value)
		assert.ErrorIs(t, err, domain.ErrInvalidRating, "valor %d debe rechazarse", value)
	}
	assert.Empty(t, ratings.byPair, "ninguna calificación inválida debe persistirse")
}

// Calificar una tienda inexistente → ErrStoreNotFound.
func TestSubmit_TiendaInexistente(t *testing.T) {
	uc, _, _ := buildRatingUseCase(t)

	_, err := uc.Submit("u1", tiendaAusente, 5)
	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
}

// Un id de tienda que no es UUID (ej. /api/stores/abc/rating) se trata como
// tienda inexistente: 404, nunca un error de tipo de Postgres.
func TestSubmit_IDMalformado(t *testing.T) {
	uc, _, _ := buildRatingUseCase(t)

	for _, id := range []string{"abc", "123", "no-es-uuid", ""} {
		_, err := uc.Submit("u1", id, 5)
		assert.ErrorIs(t, err, domain.ErrStoreNotFound, "id %q debe tratarse como inexistente", id)
	}
}

// El primer envío crea la calificación y el promedio devuelto la refleja.
func TestSubmit_PrimerEnvio(t *testing.T) {
	uc, stores, ratings := buildRatingUseCase(t)
	seedStore(stores, tiendaA, "")

	avg, err := uc.Submit("u1", tiendaA, 4)
	require.NoError(t, err)
	assert.Equal(t, "4.00", avg.StringFixed(2))
	assert.Len(t, ratings.byPair, 1)
}

// Un segundo envío del mismo usuario sobreescribe: queda UNA sola fila con el
// último valor, y el promedio refleja la sobreescritura.
func TestSubmit_SobreescribeSinDuplicar(t *testing.T) {
	uc, stores, ratings := buildRatingUseCase(t)
	seedStore(stores, tiendaA, "")

	_, err := uc.Submit("u1", tiendaA, 2)
	require.NoError(t, err)

	avg, err := uc.Submit("u1", tiendaA, 5)
	require.NoError(t, err)

	require.Len(t, ratings.byPair, 1, "el reenvío no debe crear una segunda fila")
	assert.Equal(t, 5, ratings.byPair[ratingKey{"u1", tiendaA}].Value)
	assert.Equal(t, "5.00", avg.StringFixed(2))
}

// Envíos SIMULTÁNEOS del mismo par (usuario, tienda) dejan exactamente una
// fila con uno de los valores enviados: ni duplicados ni escrituras mezcladas.
// En producción la garantía la da la sentencia única INSERT ... ON CONFLICT
// DO UPDATE sobre la constraint (user_id, store_id).
func TestSubmit_ConcurrenteMismoPar(t *testing.T) {
	uc, stores, ratings := buildRatingUseCase(t)
	seedStore(stores, tiendaA, "")

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		value := i%5 + 1
		go func(v int) {
			defer wg.Done()
			_, err := uc.Submit("u1", tiendaA, v)
			assert.NoError(t, err)
		}(value)
	}
	wg.Wait()

	require.Len(t, ratings.byPair, 1, "debe quedar exactamente una fila para el par")
	got := ratings.byPair[ratingKey{"u1", tiendaA}].Value
	assert.GreaterOrEqual(t, got, 1)
	assert.LessOrEqual(t, got, 5)

	// El agregado ve esa única fila
	agg, err := ratings.Aggregate(tiendaA)
	require.NoError(t, err)
	assert.EqualValues(t, 1, agg.Count)
	assert.Equal(t, int64(got), agg.Average.IntPart())
}

// El promedio agrega sobre todos los calificadores y se redondea a dos
// decimales (redondeo, no truncamiento).
func TestSubmit_PromedioMultiusuario(t *testing.T) {
	uc, stores, _ := buildRatingUseCase(t)
	seedStore(stores, tiendaA, "")

	_, err := uc.Submit("u1", tiendaA, 4)
	require.NoError(t, err)
	_, err = uc.Submit("u2", tiendaA, 5)
	require.NoError(t, err)

	avg, err := uc.Average(tiendaA)
	require.NoError(t, err)
	assert.Equal(t, "4.50", avg.StringFixed(2))

	// 1+5+5 = 11/3 = 3.666... → 3.67
	_, err = uc.Submit("u3", tiendaA, 1)
	require.NoError(t, err)
	_, err = uc.Submit("u1", tiendaA, 5) // sobreescribe el 4
	require.NoError(t, err)
	avg, err = uc.Average(tiendaA)
	require.NoError(t, err)
	assert.Equal(t, "3.67", avg.StringFixed(2))
}

// Tienda sin calificaciones → promedio 0.00, nunca NULL ni NaN.
func TestAverage_TiendaSinCalificaciones(t *testing.T) {
	uc, stores, _ := buildRatingUseCase(t)
	seedStore(stores, tiendaVacia, "")

	avg, err := uc.Average(tiendaVacia)
	require.NoError(t, err)
	assert.Equal(t, "0.00", avg.StringFixed(2))
}

// El dueño solo puede listar calificaciones de SU tienda; para una ajena,
// inexistente o con id malformado la respuesta es la misma: ErrForbidden.
func TestListForOwner_SoloTiendaPropia(t *testing.T) {
	uc, stores, ratings := buildRatingUseCase(t)
	seedStore(stores, tiendaA, "owner-1")
	seedStore(stores, tiendaAjena, "owner-2")
	ratings.raters["u1"] = "Cliente Uno"

	_, err := uc.Submit("u1", tiendaA, 3)
	require.NoError(t, err)

	rows, err := uc.ListForOwner("owner-1", tiendaA)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].Rating)
	assert.Equal(t, "Cliente Uno", rows[0].Name)

	_, err = uc.ListForOwner("owner-1", tiendaAjena)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.ListForOwner("owner-1", tiendaAusente)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.ListForOwner("owner-1", "abc")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
