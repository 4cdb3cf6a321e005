package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"deliveryquery/internal/core/application/usecases/queries"
	"deliveryquery/internal/core/domain/model/delivery"
	"deliveryquery/internal/core/domain/model/delivery/deliverytest"
	"deliveryquery/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintStatistics_SkipsEmptyStatuses(t *testing.T) {
	var out bytes.Buffer

	err := printStatistics(&out, queries.GetDeliveryStatisticsQueryResponse{
		Total:            3,
		Paid:             1,
		Active:           2,
		UniqueCargoTypes: 2,
		ByStatus:         map[delivery.Status]int{delivery.Done: 1, delivery.Confirmed: 2},
	})

	require.NoError(t, err)
	text := out.String()
	assert.Contains(t, text, "Total")
	assert.NotContains(t, text, "Canceled")
	assert.Less(t, strings.Index(text, "Confirmed"), strings.Index(text, "Done"))
}

func TestPrintGaps(t *testing.T) {
	var out bytes.Buffer
	err := printGaps(&out, []services.AverageGapsInfo{{
		StartCity:  "Kyiv",
		EndCity:    "Lviv",
		AverageGap: 30,
		Deliveries: 2,
	}})

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"Kyiv", "Lviv", "30.0", "2"}, strings.Fields(lines[1]))
}

func TestPrintDeliveries_UnsetLoadingStart(t *testing.T) {
	var out bytes.Buffer
	set := deliverytest.NewBuilder().WithClient("c-1", "Acme").Build(t)
	unset := deliverytest.NewBuilder().WithClient("c-2", "Globex").WithLoading(time.Time{}, time.Time{}).Build(t)

	err := printDeliveries(&out, services.ToShortInfos([]*delivery.Delivery{set, unset}))

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], deliverytest.BaseTime.Format(time.RFC3339))
	fields := strings.Fields(lines[2])
	assert.Equal(t, "-", fields[len(fields)-1])
}
