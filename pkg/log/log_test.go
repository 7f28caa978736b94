package log

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestWithCorrelationID(t *testing.T) {
	ctx, correlationID := WithCorrelationID(context.Background())

	_, err := uuid.Parse(correlationID)
	assert.NoError(t, err)
	assert.Equal(t, correlationID, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestConfigure(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	assert.Equal(t, logrus.WarnLevel, Configure("warn"))
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())

	assert.Equal(t, logrus.InfoLevel, Configure("verboso"))
}

func TestWithFieldsDevelopmentFilter(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	base := &logger{entry: logrus.NewEntry(logrus.StandardLogger())}

	filtered := base.WithFields(Fields{"total_sales": 3}).(*logger)
	assert.Same(t, base, filtered)

	kept := base.WithFields(Fields{"path": "/health", "total_sales": 3}).(*logger)
	assert.Equal(t, logrus.Fields{"path": "/health"}, kept.entry.Data)

	t.Setenv("APP_ENV", "production")
	all := base.WithFields(Fields{"total_sales": 3}).(*logger)
	assert.Equal(t, logrus.Fields{"total_sales": 3}, all.entry.Data)
}
