package data

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/fishkit/internal/checksum"
	"github.com/GriffinCanCode/fishkit/internal/generate"
	"github.com/GriffinCanCode/fishkit/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/fishkit/internal/refdata"
	"github.com/GriffinCanCode/fishkit/tests/helpers/testutil"
)

func setupProvider(t *testing.T) (*Provider, *monitoring.Metrics) {
	t.Helper()
	store, err := refdata.Open(context.Background(), refdata.Options{Seed: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	gen := generate.NewGenerator(store, nil,
		generate.WithRandom(rand.New(rand.NewSource(1))),
		generate.WithClock(func() time.Time { return time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC) }),
		generate.WithMaxBatch(20))

	m := monitoring.NewMetrics(prometheus.NewRegistry())
	return NewProvider(store, gen, m), m
}

func run(t *testing.T, p *Provider, toolID string, params map[string]interface{}) map[string]interface{} {
	t.Helper()
	result, err := p.Execute(context.Background(), toolID, params, nil)
	require.NoError(t, err)
	testutil.AssertSuccess(t, result)
	return result.Data
}

func fail(t *testing.T, p *Provider, toolID string, params map[string]interface{}) string {
	t.Helper()
	result, err := p.Execute(context.Background(), toolID, params, nil)
	require.NoError(t, err)
	testutil.AssertError(t, result)
	return *result.Error
}

func validations(t *testing.T, m *monitoring.Metrics, kind, outcome string) float64 {
	t.Helper()
	var pb dto.Metric
	require.NoError(t, m.Validations.WithLabelValues(kind, outcome).Write(&pb))
	return pb.GetCounter().GetValue()
}

func TestDefinition(t *testing.T) {
	p, _ := setupProvider(t)
	def := p.Definition()

	assert.Equal(t, "data", def.ID)
	ids := make([]string, 0, len(def.Tools))
	for _, tool := range def.Tools {
		assert.True(t, strings.HasPrefix(tool.ID, "data."), tool.ID)
		ids = append(ids, tool.ID)
	}
	assert.ElementsMatch(t, []string{
		"data.idcard.checkcode", "data.idcard.validate", "data.idcard.generate",
		"data.bankcard.checkcode", "data.bankcard.validate", "data.bankcard.generate",
		"data.zone.lookup", "data.cardbin.lookup", "data.bank.lookup",
	}, ids)
}

func TestIDCheckCodeTool(t *testing.T) {
	p, _ := setupProvider(t)

	data := run(t, p, "data.idcard.checkcode", map[string]interface{}{"number": "32012419870101001"})
	assert.Equal(t, "5", data["check_code"])

	data = run(t, p, "data.idcard.checkcode", map[string]interface{}{"number": "11010519491231002"})
	assert.Equal(t, "X", data["check_code"])

	fail(t, p, "data.idcard.checkcode", map[string]interface{}{"number": "02012419870101001"})
	fail(t, p, "data.idcard.checkcode", map[string]interface{}{"number": "3201"})
	fail(t, p, "data.idcard.checkcode", map[string]interface{}{})
}

func TestValidateIDTool(t *testing.T) {
	p, m := setupProvider(t)

	data := run(t, p, "data.idcard.validate", map[string]interface{}{"number": "130522198407316471"})
	assert.Equal(t, true, data["valid"])
	assert.NotContains(t, data, "reason")

	data = run(t, p, "data.idcard.validate", map[string]interface{}{"number": "320124198701010012"})
	assert.Equal(t, false, data["valid"])
	assert.Contains(t, data["reason"], "mismatch")

	data = run(t, p, "data.idcard.validate", map[string]interface{}{"number": "11010519491231002x"})
	assert.Equal(t, true, data["valid"])

	fail(t, p, "data.idcard.validate", map[string]interface{}{"number": "abc"})

	assert.Equal(t, 2.0, validations(t, m, KindIDCard, "valid"))
	assert.Equal(t, 1.0, validations(t, m, KindIDCard, "invalid"))
}

func TestCardTools(t *testing.T) {
	p, m := setupProvider(t)

	data := run(t, p, "data.bankcard.checkcode", map[string]interface{}{"number": "439188000699010"})
	assert.Equal(t, "9", data["check_code"])

	data = run(t, p, "data.bankcard.validate", map[string]interface{}{"number": "4391880006990109"})
	assert.Equal(t, true, data["valid"])

	data = run(t, p, "data.bankcard.validate", map[string]interface{}{"number": "4391880006990100"})
	assert.Equal(t, false, data["valid"])

	data = run(t, p, "data.bankcard.validate", map[string]interface{}{"number": "7"})
	assert.Equal(t, false, data["valid"])
	assert.Contains(t, data["reason"], "invalid length")

	assert.Equal(t, 1.0, validations(t, m, KindBankCard, "valid"))
	assert.Equal(t, 2.0, validations(t, m, KindBankCard, "invalid"))
}

func TestGenerateIDTool(t *testing.T) {
	p, m := setupProvider(t)

	data := run(t, p, "data.idcard.generate", map[string]interface{}{
		"area":   "西安市",
		"match":  "fuzzy",
		"gender": "female",
		"count":  5.0,
	})
	numbers := data["numbers"].([]string)
	require.Len(t, numbers, 5)
	for _, n := range numbers {
		assert.True(t, checksum.ValidIDNumber(n), n)
		assert.True(t, strings.HasPrefix(n, "6101"), n)
		assert.Equal(t, 0, int(n[16]-'0')%2, n)
	}

	var pb dto.Metric
	require.NoError(t, m.Generated.WithLabelValues(KindIDCard).Write(&pb))
	assert.Equal(t, 5.0, pb.GetCounter().GetValue())

	fail(t, p, "data.idcard.generate", map[string]interface{}{"area": "火星"})
	fail(t, p, "data.idcard.generate", map[string]interface{}{"count": 21.0})
	fail(t, p, "data.idcard.generate", map[string]interface{}{"count": 1.5})
	fail(t, p, "data.idcard.generate", map[string]interface{}{"min_age": 40.0, "max_age": 30.0})
}

func TestGenerateCardTool(t *testing.T) {
	p, _ := setupProvider(t)

	data := run(t, p, "data.bankcard.generate", map[string]interface{}{"bank": "ICBC", "card_type": "cc", "count": 3.0})
	numbers := data["numbers"].([]string)
	require.Len(t, numbers, 3)
	for _, n := range numbers {
		assert.True(t, strings.HasPrefix(n, "427020"), n)
		assert.True(t, checksum.ValidCardNumber(n), n)
	}

	data = run(t, p, "data.bankcard.generate", map[string]interface{}{"bank": "CMB"})
	assert.Equal(t, 1, data["count"])

	fail(t, p, "data.bankcard.generate", map[string]interface{}{"bank": "HSBC"})
	fail(t, p, "data.bankcard.generate", map[string]interface{}{})
}

func TestZoneLookupTool(t *testing.T) {
	p, _ := setupProvider(t)

	data := run(t, p, "data.zone.lookup", map[string]interface{}{"area": "北京市"})
	zones := data["zones"].([]refdata.Zone)
	require.Len(t, zones, 1)
	assert.Equal(t, "110000", zones[0].Code)

	data = run(t, p, "data.zone.lookup", map[string]interface{}{"area": "西安市", "match": "FUZZY"})
	assert.Equal(t, 11, data["count"])

	data = run(t, p, "data.zone.lookup", map[string]interface{}{"area": "西安", "match": "FUZZY", "single": true})
	assert.Equal(t, "220403", data["code"])

	data = run(t, p, "data.zone.lookup", map[string]interface{}{"area": "火星", "single": true})
	assert.Equal(t, "", data["code"])

	data = run(t, p, "data.zone.lookup", map[string]interface{}{"random": true})
	zone := data["zone"].(refdata.Zone)
	assert.False(t, strings.HasSuffix(zone.Code, "00"), zone.Code)

	fail(t, p, "data.zone.lookup", map[string]interface{}{"area": "北京市", "match": "SOUNDEX"})
	fail(t, p, "data.zone.lookup", map[string]interface{}{})
}

func TestCardBinAndBankLookupTools(t *testing.T) {
	p, _ := setupProvider(t)

	data := run(t, p, "data.cardbin.lookup", map[string]interface{}{"bank": "CMB", "card_type": "CC"})
	bins := data["bins"].([]refdata.CardBin)
	require.Len(t, bins, 2)
	assert.Equal(t, "439188", bins[0].BIN)

	data = run(t, p, "data.cardbin.lookup", map[string]interface{}{"bank": "CMB"})
	assert.Equal(t, 4, data["count"])

	fail(t, p, "data.cardbin.lookup", map[string]interface{}{"bank": "CMB", "card_type": "GOLD"})

	data = run(t, p, "data.bank.lookup", map[string]interface{}{"name": "招商银行"})
	banks := data["banks"].([]refdata.Bank)
	require.Len(t, banks, 1)
	assert.Equal(t, "CMB", banks[0].Code)

	fail(t, p, "data.bank.lookup", map[string]interface{}{"name": ""})
}

func TestUnknownTool(t *testing.T) {
	p, _ := setupProvider(t)
	_, err := p.Execute(context.Background(), "data.nope", map[string]interface{}{}, nil)
	assert.Error(t, err)
}
