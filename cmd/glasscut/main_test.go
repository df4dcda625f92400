package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/GlassCut/internal/model"
	"github.com/piwi3910/GlassCut/internal/pricing"
	"github.com/piwi3910/GlassCut/internal/project"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI with settings files inside dir.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{
		"--config", filepath.Join(dir, "config.json"),
		"--inventory", filepath.Join(dir, "inventory.json"),
		"--templates", filepath.Join(dir, "templates.json"),
	}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func writeSampleOrder(t *testing.T, dir, name string) string {
	t.Helper()
	o := model.NewOrder("Q-" + name)
	p := model.NewPanel("Window", 1000, 1500, model.UnitMM, 1)
	p.ThicknessMM = 8
	p.Rate = decimal.NewFromInt(80)
	o.AddPanel(p)
	path := filepath.Join(dir, name)
	require.NoError(t, project.SaveOrder(path, o))
	return path
}

func TestQuoteJSON(t *testing.T) {
	dir := t.TempDir()
	order := writeSampleOrder(t, dir, "order.yaml")

	out, err := run(t, dir, "--json", "quote", order)
	require.NoError(t, err)

	var totals pricing.Totals
	require.NoError(t, json.Unmarshal([]byte(out), &totals))
	assert.Equal(t, "1291.67", totals.GlassCost.StringFixed(2))
	assert.Equal(t, "3291.67", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "592.50", totals.TaxAmount.StringFixed(2))
	assert.Equal(t, "3884.17", totals.GrandTotal.StringFixed(2))
	assert.Equal(t, "296.25", totals.TaxBreakdown.CGST.StringFixed(2))
}

func TestQuoteText(t *testing.T) {
	dir := t.TempDir()
	order := writeSampleOrder(t, dir, "order.json")

	out, err := run(t, dir, "quote", order)
	require.NoError(t, err)
	assert.Contains(t, out, "Grand total")
	assert.Contains(t, out, "3884.17")
	assert.Contains(t, out, "Rupees Only")
}

func TestQuoteFillsRateFromInventory(t *testing.T) {
	dir := t.TempDir()
	o := model.NewOrder("Q-inv")
	p := model.NewPanel("Shelf", 1000, 1500, model.UnitMM, 1)
	p.ThicknessMM = 8
	o.AddPanel(p)
	path := filepath.Join(dir, "order.json")
	require.NoError(t, project.SaveOrder(path, o))

	out, err := run(t, dir, "--json", "quote", path)
	require.NoError(t, err)

	var totals pricing.Totals
	require.NoError(t, json.Unmarshal([]byte(out), &totals))
	require.Len(t, totals.Lines, 1)
	assert.True(t, totals.Lines[0].Rate.Equal(decimal.NewFromInt(80)), "default inventory has 8mm clear at 80")
}

func TestPlan(t *testing.T) {
	dir := t.TempDir()
	order := writeSampleOrder(t, dir, "order.json")

	out, err := run(t, dir, "--json", "plan", order, "--jumbo", "3660x2440")
	require.NoError(t, err)

	var report planReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 1, report.Plan.Summary.TotalSheets)
	assert.Equal(t, 3660.0, report.Plan.Jumbo.Width)
	assert.NotEmpty(t, report.Offcuts)
	assert.Equal(t, 1, report.Estimate.SheetsNeededMin)
}

func TestPlanPanelTooLarge(t *testing.T) {
	dir := t.TempDir()
	order := writeSampleOrder(t, dir, "order.json")

	_, err := run(t, dir, "plan", order, "--jumbo", "900x900")
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrPanelTooLarge)
}

func TestCompare(t *testing.T) {
	dir := t.TempDir()
	order := writeSampleOrder(t, dir, "order.json")

	out, err := run(t, dir, "--json", "compare", order, "--jumbo", "900x900", "--jumbo", "2000x2000")
	require.NoError(t, err)

	var got comparisonOut
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Results, 2)
	assert.NotEmpty(t, got.Results[0].Error)
	require.NotNil(t, got.Best)
	assert.Equal(t, 2000.0, got.Best.Width)
}

func TestWords(t *testing.T) {
	out, err := run(t, t.TempDir(), "words", "100000")
	require.NoError(t, err)
	assert.Equal(t, "One Lakh Rupees Only", strings.TrimSpace(out))

	_, err = run(t, t.TempDir(), "words", "lots")
	assert.Error(t, err)
}

func TestBatchKeepsArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"a.json", "b.yaml", "c.json", "d.yml"} {
		paths = append(paths, writeSampleOrder(t, dir, name))
	}

	out, err := run(t, dir, append([]string{"--json", "batch", "-j", "2"}, paths...)...)
	require.NoError(t, err)

	var results []batchResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 4)
	for i, r := range results {
		assert.Equal(t, paths[i], r.Path)
		assert.Equal(t, "3884.17", r.Totals.GrandTotal.StringFixed(2))
	}
}

func TestBatchFailsOnBadOrder(t *testing.T) {
	dir := t.TempDir()
	good := writeSampleOrder(t, dir, "good.json")

	_, err := run(t, dir, "batch", good, filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestImportCSV(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "panels.csv")
	csv := "Label,Width,Height,Qty,Unit,Type,Thickness,Rate\n" +
		"Door,30,84,2,in,toughened,12,\n" +
		"Bad,-1,10,1,mm,clear,8,80\n"
	require.NoError(t, os.WriteFile(csvPath, []byte(csv), 0644))
	orderPath := filepath.Join(dir, "out", "order.yaml")

	out, err := run(t, dir, "import", csvPath, orderPath, "--customer", "Site 4")
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 panels (1 rows rejected)")

	o, _, err := project.LoadOrder(orderPath)
	require.NoError(t, err)
	assert.Equal(t, "panels", o.Number)
	assert.Equal(t, "Site 4", o.Customer)
	require.Len(t, o.Panels, 1)
	assert.Equal(t, model.UnitInch, o.Panels[0].Unit)
	assert.Equal(t, model.GlassTempered, o.Panels[0].GlassType)
	assert.True(t, o.Panels[0].Rate.Equal(decimal.NewFromInt(135)), "rate filled from the 12mm tempered inventory entry")
}

func TestImportUnsupportedFile(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, dir, "import", filepath.Join(dir, "panels.pdf"), filepath.Join(dir, "o.json"))
	assert.Error(t, err)
}

func TestTemplateRoundTrip(t *testing.T) {
	dir := t.TempDir()
	order := writeSampleOrder(t, dir, "order.json")

	_, err := run(t, dir, "template", "save", order, "Standard window")
	require.NoError(t, err)
	_, err = run(t, dir, "template", "save", order, "Standard window")
	assert.Error(t, err, "duplicate name")

	out, err := run(t, dir, "template", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Standard window")

	newPath := filepath.Join(dir, "new.json")
	_, err = run(t, dir, "template", "new", "Standard window", newPath, "--number", "Q-2")
	require.NoError(t, err)

	o, _, err := project.LoadOrder(newPath)
	require.NoError(t, err)
	assert.Equal(t, "Q-2", o.Number)
	require.Len(t, o.Panels, 1)
	assert.Equal(t, "Window", o.Panels[0].Label)
}

func TestBackupExportImport(t *testing.T) {
	src := t.TempDir()
	cfg := model.DefaultAppConfig()
	cfg.DefaultUnit = model.UnitFoot
	require.NoError(t, project.SaveAppConfig(filepath.Join(src, "config.json"), cfg))

	backup := filepath.Join(src, "backup.json")
	_, err := run(t, src, "backup", "export", backup)
	require.NoError(t, err)

	dst := t.TempDir()
	_, err = run(t, dst, "backup", "import", backup)
	require.NoError(t, err)

	restored, err := project.LoadAppConfig(filepath.Join(dst, "config.json"))
	require.NoError(t, err)
	assert.Equal(t, model.UnitFoot, restored.DefaultUnit)
	_, err = os.Stat(filepath.Join(dst, "inventory.json"))
	assert.NoError(t, err)
}

func TestParseJumbo(t *testing.T) {
	j, err := parseJumbo("6000x3300")
	require.NoError(t, err)
	assert.Equal(t, model.JumboSheet{Label: "Jumbo 6000x3300", Width: 6000, Height: 3300}, j)

	j, err = parseJumbo(" 3660 X 2440 ")
	require.NoError(t, err)
	assert.Equal(t, 2440.0, j.Height)

	for _, bad := range []string{"", "6000", "0x100", "axb", "1x2x3"} {
		_, err := parseJumbo(bad)
		assert.Error(t, err, bad)
	}
}

func TestPlanJumboPresetName(t *testing.T) {
	dir := t.TempDir()
	order := writeSampleOrder(t, dir, "order.json")

	out, err := run(t, dir, "--json", "plan", order, "--jumbo", "Jumbo 3660x2440")
	require.NoError(t, err)

	var report planReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "Jumbo 3660x2440", report.Plan.Jumbo.Label)
	assert.Equal(t, 2440.0, report.Plan.Jumbo.Height)
}

func TestPlanUnknownJumboListsPresets(t *testing.T) {
	dir := t.TempDir()
	order := writeSampleOrder(t, dir, "order.json")

	_, err := run(t, dir, "plan", order, "--jumbo", "Giant")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Half 3300x2140")
}

func TestPlanText(t *testing.T) {
	dir := t.TempDir()
	order := writeSampleOrder(t, dir, "order.json")

	out, err := run(t, dir, "plan", order)
	require.NoError(t, err)
	assert.Contains(t, out, "Jumbo 6000x3300: 1 pieces on 1 sheets")
}

func TestCompareByPresetID(t *testing.T) {
	dir := t.TempDir()
	inv, err := project.LoadInventory(filepath.Join(dir, "inventory.json"))
	require.NoError(t, err)
	half := inv.FindJumboByName("Half 3300x2140")
	require.NotNil(t, half)
	order := writeSampleOrder(t, dir, "order.json")

	out, err := run(t, dir, "--json", "compare", order, "--jumbo", half.ID, "--jumbo", "900x900")
	require.NoError(t, err)

	var got comparisonOut
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.NotNil(t, got.Best)
	assert.Equal(t, "Half 3300x2140", got.Best.Label)
}

func TestInventoryImportAndList(t *testing.T) {
	dir := t.TempDir()
	extra := model.Inventory{
		Rates:  []model.GlassRate{model.NewGlassRate(model.GlassTinted, 8, decimal.NewFromInt(88))},
		Jumbos: []model.JumboPreset{model.NewJumboPreset("Stock 2440x1830", 2440, 1830)},
	}
	extraPath := filepath.Join(dir, "extra.json")
	require.NoError(t, project.SaveInventory(extraPath, extra))

	out, err := run(t, dir, "inventory", "import", extraPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Added 2 entries")

	out, err = run(t, dir, "inventory", "import", extraPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Added 0 entries", "same IDs are skipped")

	out, err = run(t, dir, "inventory", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Stock 2440x1830")
	assert.Contains(t, out, "88.00")

	_, err = run(t, dir, "inventory", "import", filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
