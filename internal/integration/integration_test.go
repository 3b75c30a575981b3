package integration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"
	"termtrivia/internal/bank"
	"termtrivia/internal/domain"
	pgbank "termtrivia/internal/infra/postgres"
	pgmigrations "termtrivia/internal/infra/postgres/migrations"
	redisstore "termtrivia/internal/infra/redis"
	"termtrivia/internal/quiz"
)

// scriptedPlayer answers every question with its correct text and records
// nothing to the terminal.
type scriptedPlayer struct {
	answers map[string]string
	current string
}

func (p *scriptedPlayer) SessionStarted(string, int, bool)          {}
func (p *scriptedPlayer) QuestionTimedOut()                         {}
func (p *scriptedPlayer) ShowOutcome(domain.AnswerOutcome)          {}
func (p *scriptedPlayer) ShowSummary(domain.SessionResult, float64) {}
func (p *scriptedPlayer) ShowQuestion(_, _ int, text string, _ []string) {
	p.current = text
}
func (p *scriptedPlayer) ReadAnswer(string, time.Duration) (string, bool) {
	return p.answers[p.current], true
}

func TestFullGameEndToEnd(t *testing.T) {
	ctx := context.Background()
	requireDocker(t)

	pgURL, pgCleanup := startPostgres(t, ctx)
	defer pgCleanup()
	redisURL, redisCleanup := startRedis(t, ctx)
	defer redisCleanup()

	migrateAndSeed(t, ctx, pgURL)

	pool, err := pgxpool.Connect(ctx, pgURL)
	if err != nil {
		t.Fatalf("connect pg: %v", err)
	}
	defer pool.Close()

	loader := bank.NewCachedBank(pgbank.NewBankLoader(pool), 5*time.Minute)
	questions, err := loader.LoadBank(ctx)
	if err != nil {
		t.Fatalf("load bank: %v", err)
	}
	if len(questions) != len(bank.Default()) {
		t.Fatalf("expected %d seeded questions, got %d", len(bank.Default()), len(questions))
	}

	player := &scriptedPlayer{answers: map[string]string{}}
	for _, q := range questions {
		player.answers[q.Text] = q.Answer
	}
	runner := quiz.NewRunner(loader, quiz.NewSelector(nil), player, player)

	result, err := runner.Run(ctx, "alice", domain.SessionConfig{Difficulty: domain.DifficultyAll})
	if err != nil {
		t.Fatalf("run session: %v", err)
	}
	if result.Score != result.Total || result.Percentage != 100 {
		t.Fatalf("expected perfect session, got %d/%d (%.2f%%)", result.Score, result.Total, result.Percentage)
	}

	redisClient, err := redisClientFromURL(redisURL)
	if err != nil {
		t.Fatalf("redis client: %v", err)
	}
	store := redisstore.NewStore(redisClient, "")
	if err := store.Append(ctx, result); err != nil {
		t.Fatalf("append: %v", err)
	}

	top, err := store.TopN(ctx, 5)
	if err != nil {
		t.Fatalf("topN: %v", err)
	}
	if len(top) != 1 || top[0].User != "alice" || top[0].Score != result.Score {
		t.Fatalf("expected persisted session on top, got %+v", top)
	}
}

func migrateAndSeed(t *testing.T, ctx context.Context, dsn string) {
	t.Helper()
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	migrator := migrate.NewMigrator(db, pgmigrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("migrator init: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	for _, q := range bank.Default() {
		data, err := json.Marshal(q)
		if err != nil {
			t.Fatalf("marshal question: %v", err)
		}
		if _, err := db.ExecContext(ctx, `INSERT INTO questions (data) VALUES (?::jsonb)`, string(data)); err != nil {
			t.Fatalf("insert question: %v", err)
		}
	}
}

func startPostgres(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_USER": "quiz", "POSTGRES_PASSWORD": "quizpass", "POSTGRES_DB": "quizdb"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start postgres: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	dsn := fmt.Sprintf("postgres://quiz:quizpass@%s:%s/quizdb?sslmode=disable", host, port.Port())
	return dsn, func() {
		_ = container.Terminate(ctx)
	}
}

func startRedis(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start redis: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("redis host: %v", err)
	}
	port, err := container.MappedPort(ctx, "6379/tcp")
	if err != nil {
		t.Fatalf("redis port: %v", err)
	}
	url := fmt.Sprintf("redis://%s:%s", host, port.Port())
	return url, func() {
		_ = container.Terminate(ctx)
	}
}

func redisClientFromURL(url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	}), nil
}

func requireDocker(t *testing.T) {
	t.Helper()
	if _, err := tc.NewDockerProvider(); err != nil {
		t.Skipf("docker not available: %v", err)
	}
}
