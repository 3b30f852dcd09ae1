package importer

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsat/josephjoseph-chile/internal/feed"
	"github.com/rsat/josephjoseph-chile/internal/models"
)

func imageServer(t *testing.T, fail bool) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			http.Error(w, "gone", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write([]byte("jpegdata"))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestImportWithMedia(t *testing.T) {
	images := imageServer(t, false)

	product := eligibleProduct(1, "Dial Containers", 2)
	product.Images[0].Src = images.URL + "/primary.jpg"

	imp, stub := newImporter(t, []feed.Product{product})

	report, err := imp.ImportWithMedia()
	require.NoError(t, err)

	assert.Equal(t, 1, report.Succeeded)
	assert.Equal(t, 0, report.Failed)

	require.Len(t, stub.creates, 1)
	assert.Empty(t, stub.creates[0].ImageURL, "hosted copy replaces the external URL")
	assert.Equal(t, 1, stub.uploads)
	assert.Equal(t, []string{"doc-1=101"}, stub.links)
}

func TestImportWithMediaFailsItemOnBrokenImage(t *testing.T) {
	images := imageServer(t, true)

	product := eligibleProduct(1, "Dial Containers", 2)
	product.Images[0].Src = images.URL + "/primary.jpg"

	imp, stub := newImporter(t, []feed.Product{product})

	report, err := imp.ImportWithMedia()
	require.NoError(t, err)

	assert.Equal(t, 0, report.Succeeded)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 0, stub.uploads)
	assert.Len(t, stub.creates, 1, "record exists, image attach failed after create")
}

func TestSeedCurated(t *testing.T) {
	imp, stub := newImporter(t, nil)

	published := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	report, err := imp.SeedCurated([]models.Product{
		{ID: "index", Name: "Index™", Category: models.CategoryPreparacion, PublishedAt: published},
		{ID: "dial", Name: "Dial™", Category: models.CategoryAlmacenamiento},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Succeeded)
	require.Len(t, stub.creates, 2)
	assert.Equal(t, published.Format(time.RFC3339), stub.creates[0].PublishedAt)
	assert.NotEmpty(t, stub.creates[1].PublishedAt, "zero publish time is replaced")
}

func TestSeedCuratedCountsStoreRejections(t *testing.T) {
	imp, stub := newImporter(t, nil)
	stub.failCreates = true

	report, err := imp.SeedCurated([]models.Product{{ID: "index", Name: "Index™"}})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 0, report.Succeeded)
}
