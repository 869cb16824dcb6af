package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "0123456789abcdef0123456789abcdef"

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte(`
server:
  host: 127.0.0.1
  port: 9090
database:
  driver: memory
jwt:
  secret: ` + secret + `
`))
	require.NoError(t, err)

	assert.Equal(t, 9091, cfg.Server.HTTPPort)
	assert.Equal(t, "127.0.0.1:9090", cfg.GetServerAddress())
	assert.Equal(t, "127.0.0.1:9091", cfg.GetHTTPAddress())
	assert.Equal(t, 60, cfg.JWT.AccessTokenExpiry)
	assert.Equal(t, "rent-engine", cfg.Settlement.EngineAddress)
	assert.Equal(t, int64(1), cfg.Settlement.KeeperFeePercent)
	assert.Equal(t, "rent-keeper", cfg.Settlement.KeeperAddress)
	assert.Equal(t, "0 */5 * * * *", cfg.Scheduler.SettleExpiredRentals)
	assert.True(t, cfg.Scheduler.InProcess)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestParse_Postgres(t *testing.T) {
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("KEEPER_FEE_PERCENT", "2")

	cfg, err := Parse([]byte(`
server:
  port: 9090
database:
  host: db
  port: 5432
  user: escrow
  database: escrow
jwt:
  secret: ` + secret + `
`))
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.False(t, cfg.Scheduler.InProcess)
	assert.Equal(t, int64(2), cfg.Settlement.KeeperFeePercent)
	assert.Equal(t, "postgres://escrow:s3cret@db:5432/escrow?sslmode=disable", cfg.GetDatabaseConnectionString())
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"Port", Config{}, "invalid server port"},
		{"Driver", Config{Server: ServerConfig{Port: 1}, Database: DatabaseConfig{Driver: "mysql"}}, "unsupported database driver"},
		{"Host", Config{Server: ServerConfig{Port: 1}}, "database host is required"},
		{"Secret", Config{Server: ServerConfig{Port: 1}, Database: DatabaseConfig{Driver: "memory"}, JWT: JWTConfig{Secret: "short"}}, "at least 32 characters"},
		{"KeeperFee", Config{
			Server:     ServerConfig{Port: 1},
			Database:   DatabaseConfig{Driver: "memory"},
			JWT:        JWTConfig{Secret: secret},
			Settlement: SettlementConfig{KeeperFeePercent: 50},
		}, "keeper fee percent"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestGetSecurityLevel(t *testing.T) {
	assert.Equal(t, SecurityPublic, GetSecurityLevel("/rentescrow.v1.RentService/GetItem"))
	assert.Equal(t, SecurityAccess, GetSecurityLevel("/rentescrow.v1.RentService/StartRent"))
	assert.Equal(t, SecurityAdmin, GetSecurityLevel("/rentescrow.v1.Unknown/Call"))
}
