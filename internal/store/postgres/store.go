package postgres

import (
	"database/sql"
	"fmt"
	"net/url"
	"strconv"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	Host     string `mapstructure:"host" yaml:"host"`
	Port     int    `mapstructure:"port" yaml:"port" default:"5432"`
	User     string `mapstructure:"user" yaml:"user"`
	Password string `mapstructure:"password" yaml:"password"`
	Name     string `mapstructure:"name" yaml:"name" default:"approvalflow"`
	SslMode  string `mapstructure:"sslmode" yaml:"sslmode" default:"disable"`
	LogLevel string `mapstructure:"log_level" yaml:"log_level" default:"silent" validate:"omitempty,oneof=silent error warn info"`
}

// Enabled reports whether a database is configured.
func (c Config) Enabled() bool {
	return c.Host != ""
}

func (c Config) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   c.Host + ":" + strconv.Itoa(c.Port),
		Path:   c.Name,
	}
	q := u.Query()
	q.Set("sslmode", c.SslMode)
	u.RawQuery = q.Encode()
	return u.String()
}

type Store struct {
	db *gorm.DB
}

// NewClient connects to the configured database and instruments queries with OpenTelemetry.
func NewClient(c Config) (*Store, error) {
	return open(postgres.Open(c.DSN()), c.LogLevel)
}

// NewClientWithConn builds a Store over an existing connection.
func NewClientWithConn(conn *sql.DB, logLevel string) (*Store, error) {
	return open(postgres.New(postgres.Config{Conn: conn}), logLevel)
}

func open(dialector gorm.Dialector, logLevel string) (*Store, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(logLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Use(otelgorm.NewPlugin()); err != nil {
		return nil, fmt.Errorf("instrumenting database: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) DB() (*sql.DB, error) {
	return s.db.DB()
}

func (s *Store) Close() error {
	db, err := s.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}

func gormLogLevel(level string) logger.LogLevel {
	switch level {
	case "error":
		return logger.Error
	case "warn":
		return logger.Warn
	case "info":
		return logger.Info
	}
	return logger.Silent
}
