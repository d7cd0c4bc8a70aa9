package svc

import (
	"context"
	"strings"
	"sync"
	"time"

	clickhouse "github.com/ClickHouse/clickhouse-go/v2"
	"github.com/playdecks/insight/internal/analytics"
	"github.com/playdecks/insight/internal/config"
	"github.com/playdecks/insight/internal/db"
	chcosts "github.com/playdecks/insight/internal/repo/ch"
	configsgorm "github.com/playdecks/insight/internal/repo/gorm/configs"
	costsgorm "github.com/playdecks/insight/internal/repo/gorm/costs"
	moderationgorm "github.com/playdecks/insight/internal/repo/gorm/moderation"
	snapshotsgorm "github.com/playdecks/insight/internal/repo/gorm/snapshots"
	usersgorm "github.com/playdecks/insight/internal/repo/gorm/users"
	"github.com/playdecks/insight/internal/security/token"
	"github.com/zeromicro/go-zero/core/logx"
	"gorm.io/gorm"
)

// CostSource is the window read the cost query families consume, satisfied
// by the GORM repository and the ClickHouse repository alike.
type CostSource interface {
	ListWindow(ctx context.Context, from, to time.Time) ([]analytics.CostEvent, error)
}

type ServiceContext struct {
	Config config.Config

	DB         *gorm.DB
	Snapshots  *snapshotsgorm.Repo
	Costs      CostSource
	Moderation *moderationgorm.Repo
	Configs    *configsgorm.Repo
	Operators  *usersgorm.Repo

	JWT *token.Manager

	ch            clickhouse.Conn
	loginMu       sync.Mutex
	loginAttempts map[string][]time.Time
}

func NewServiceContext(c config.Config) *ServiceContext {
	gdb, err := db.Open(c.DataSource())
	if err != nil {
		logx.Must(err)
	}
	if err := migrate(gdb); err != nil {
		logx.Must(err)
	}

	ctx := &ServiceContext{
		Config:        c,
		DB:            gdb,
		Snapshots:     snapshotsgorm.New(gdb),
		Costs:         costsgorm.New(gdb),
		Moderation:    moderationgorm.New(gdb),
		Configs:       configsgorm.New(gdb),
		Operators:     usersgorm.New(gdb),
		JWT:           token.NewManager(c.Auth.Secret),
		loginAttempts: map[string][]time.Time{},
	}
	ctx.initClickHouse()

	if u := strings.TrimSpace(c.Auth.Bootstrap.Username); u != "" {
		if err := ctx.Operators.EnsureAdmin(context.Background(), u, c.Auth.Bootstrap.Password); err != nil {
			logx.Errorf("bootstrap admin: %v", err)
		}
	}
	return ctx
}

func migrate(gdb *gorm.DB) error {
	for _, fn := range []func(*gorm.DB) error{
		snapshotsgorm.AutoMigrate,
		costsgorm.AutoMigrate,
		moderationgorm.AutoMigrate,
		configsgorm.AutoMigrate,
		usersgorm.AutoMigrate,
	} {
		if err := fn(gdb); err != nil {
			return err
		}
	}
	return nil
}

// initClickHouse switches the cost source to ClickHouse when a DSN is
// configured. Connection failure keeps the relational source and logs.
func (s *ServiceContext) initClickHouse() {
	dsn := strings.TrimSpace(s.Config.ClickHouse.DSN)
	if dsn == "" {
		return
	}
	conn, err := chcosts.Open(dsn)
	if err != nil {
		logx.Errorf("clickhouse disabled: %v", err)
		return
	}
	s.ch = conn
	s.Costs = chcosts.New(conn)
	logx.Infof("cost stream: clickhouse")
}

func (s *ServiceContext) ClickHouse() clickhouse.Conn { return s.ch }

// TokenTTL is the lifetime of issued operator tokens.
func (s *ServiceContext) TokenTTL() time.Duration {
	return time.Duration(s.Config.Auth.TokenTTLMinutes) * time.Minute
}

// AllowLogin rate limits login attempts per ip+username: at most 10 per
// rolling 5 minutes.
func (s *ServiceContext) AllowLogin(ip, username string) bool {
	key := strings.TrimSpace(ip) + "|" + strings.ToLower(strings.TrimSpace(username))
	now := time.Now()
	window := now.Add(-5 * time.Minute)
	s.loginMu.Lock()
	defer s.loginMu.Unlock()
	arr := s.loginAttempts[key]
	kept := arr[:0]
	for _, t := range arr {
		if t.After(window) {
			kept = append(kept, t)
		}
	}
	if len(kept) >= 10 {
		s.loginAttempts[key] = kept
		return false
	}
	kept = append(kept, now)
	s.loginAttempts[key] = kept
	return true
}
