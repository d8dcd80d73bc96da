package text

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexdraft-labs/lexdraft-cli/internal/core/domain"
)

func TestExporter_Export(t *testing.T) {
	ctx := context.Background()
	exporter := New()

	t.Run("writes a titled document", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "agreement.txt")

		path, err := exporter.Export(ctx, domain.DocTypeRentalAgreement, "Body text.", dest)
		require.NoError(t, err)
		assert.Equal(t, dest, path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "Rental Agreement\n================\n\nBody text.", string(data))
	})

	t.Run("adds a txt extension", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "agreement")

		path, err := exporter.Export(ctx, domain.DocTypeHouseLease, "Body.", dest)
		require.NoError(t, err)
		assert.Equal(t, dest+".txt", path)
	})

	t.Run("empty destination rejected", func(t *testing.T) {
		_, err := exporter.Export(ctx, domain.DocTypeHouseLease, "Body.", "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
