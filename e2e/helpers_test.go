//go:build e2e && unix

package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testCatalog = `products:
  - id: "1"
    name: Red Shirt
    category: Tops
    price: 20
    description: Soft cotton tee
  - id: "2"
    name: Blue Shoe
    category: Shoes
    price: 50
  - id: "3"
    name: Red Hat
    category: Hats
    price: 10
  - id: "4"
    name: Green Shoe
    category: Shoes
    price: 45
`

// startShop starts the app on the test catalog and waits for the first frame
func startShop(t *testing.T, extraArgs ...string) *TUITestFramework {
	t.Helper()
	tf := NewTUITest(t)
	t.Cleanup(tf.Cleanup)

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")
	catalogPath, err := tf.WriteCatalog(testCatalog)
	require.NoError(t, err, "Failed to write catalog")

	args := append([]string{
		"--catalog", catalogPath,
		"--log-file", filepath.Join(workspace, "shopgrid.log"),
	}, extraArgs...)
	require.NoError(t, tf.StartApp(args...), "Failed to start app")

	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("shopgrid"), "Should show shopgrid title")
	require.True(t, tf.SeePlain("4 of 4 products"), "Should list the whole catalog")
	return tf
}
