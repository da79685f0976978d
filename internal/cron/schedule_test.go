package cron_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/favonia/hetzner-ddns/internal/cron"
)

func TestMustNewSuccessful(t *testing.T) {
	t.Parallel()
	for _, tc := range [...]string{
		"*/4 * * * *",
		"@every 5h0s",
		"@yearly",
	} {
		t.Run(tc, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc, cron.MustNew(tc).Describe())
		})
	}
}

func TestMustNewPanicking(t *testing.T) {
	t.Parallel()
	for _, tc := range [...]string{
		"*/4 * * * * *",
		"@every 5ss",
		"@cool",
	} {
		t.Run(tc, func(t *testing.T) {
			t.Parallel()
			require.Panics(t, func() { cron.MustNew(tc) })
		})
	}
}

func TestEvery(t *testing.T) {
	t.Parallel()
	const delta = time.Second * 5
	for name, tc := range map[string]struct {
		interval time.Duration
		describe string
		ok       bool
	}{
		"600s":     {600 * time.Second, "@every 10m0s", true},
		"1s":       {time.Second, "@every 1s", true},
		"zero":     {0, "", false},
		"negative": {-time.Second, "", false},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			s, err := cron.Every(tc.interval)
			if !tc.ok {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.describe, cron.DescribeSchedule(s))
			require.WithinDuration(t, time.Now().Add(tc.interval), cron.Next(s), delta)
		})
	}
}

func TestNilSchedule(t *testing.T) {
	t.Parallel()
	require.Equal(t, "@once", cron.DescribeSchedule(nil))
	require.True(t, cron.Next(nil).IsZero())
}
