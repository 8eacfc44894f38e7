package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const version = "1.0.0"

type config struct {
	port int
	env  string
	db   struct {
		dsn                string
		maxOpenConnections int
		maxIdleConnections int
		maxIdleTime        time.Duration
	}
	jwt struct {
		secret         string
		issuer         string
		audience       string
		expiresInHours int
	}
	smtp struct {
		host     string
		port     int
		username string
		password string
		sender   string
	}
	limiter struct {
		enabled              bool
		maxRequestsPerSecond float64
		burst                int
	}
	cors struct {
		trustedOrigins []string
	}
}

type application struct {
	config config
	store  store
	mailer *mailer
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid value %q for %s, defaulting to %d", v, key, fallback)
		return fallback
	}
	return n
}

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	_ = godotenv.Load()

	var cfg config
	flag.IntVar(&cfg.port, "port", envIntOr("PORT", 3000), "Server Port")
	flag.StringVar(&cfg.env, "env", envOr("ENV", "development"), "Environment [development|production]")

	flag.StringVar(&cfg.db.dsn, "db-dsn", os.Getenv("DB_DSN"), "PostgreSQL DSN")
	flag.IntVar(&cfg.db.maxOpenConnections, "db-max-open-conns", 25, "PostgreSQL max open connections")
	flag.IntVar(&cfg.db.maxIdleConnections, "db-max-idle-conns", 25, "PostgreSQL max idle connections")
	var maxIdleTime string
	flag.StringVar(&maxIdleTime, "db-max-idle-time", "15m", "PostgreSQL max connection idle time")

	flag.StringVar(&cfg.jwt.secret, "jwt-secret", os.Getenv("JWT_SECRET"), "JWT symmetric secret")
	flag.StringVar(&cfg.jwt.issuer, "jwt-issuer", os.Getenv("JWT_ISSUER"), "JWT issuer")
	flag.StringVar(&cfg.jwt.audience, "jwt-audience", os.Getenv("JWT_AUDIENCE"), "JWT audience")
	flag.IntVar(&cfg.jwt.expiresInHours, "jwt-expires-in-hours", envIntOr("JWT_EXPIRES_IN_HOURS", 24), "JWT expiry in hours")

	flag.StringVar(&cfg.smtp.host, "smtp-host", os.Getenv("SMTP_HOST"), "SMTP host")
	flag.IntVar(&cfg.smtp.port, "smtp-port", envIntOr("SMTP_PORT", 25), "SMTP port")
	flag.StringVar(&cfg.smtp.username, "smtp-username", os.Getenv("SMTP_USERNAME"), "SMTP username")
	flag.StringVar(&cfg.smtp.password, "smtp-password", os.Getenv("SMTP_PASSWORD"), "SMTP password")
	flag.StringVar(&cfg.smtp.sender, "smtp-sender", os.Getenv("SMTP_SENDER"), "SMTP sender")

	flag.BoolVar(&cfg.limiter.enabled, "limiter-enabled", true, "Enable rate limiter")
	flag.Float64Var(&cfg.limiter.maxRequestsPerSecond, "limiter-rps", 2, "Rate limiter max requests per second")
	flag.IntVar(&cfg.limiter.burst, "limiter-burst", 4, "Rate limiter max burst")

	var trustedOrigins string
	flag.StringVar(&trustedOrigins, "cors-trusted-origins", envOr("CORS_TRUSTED_ORIGINS", "*"), "Trusted CORS origins (comma separated)")
	flag.Parse()

	d, err := time.ParseDuration(maxIdleTime)
	if err != nil {
		cfg.db.maxIdleTime = 15 * time.Minute
		log.Printf(`invalid value %s for flag "db-max-idle-time" defaulting to %s`, maxIdleTime, cfg.db.maxIdleTime)
	} else {
		cfg.db.maxIdleTime = d
	}

	for _, o := range strings.Split(trustedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.cors.trustedOrigins = append(cfg.cors.trustedOrigins, o)
		}
	}

	if cfg.db.dsn == "" {
		log.Fatal("DB_DSN is not set, refusing to start")
	}
	if cfg.jwt.secret == "" || cfg.jwt.issuer == "" || cfg.jwt.audience == "" {
		log.Fatal("JWT_SECRET, JWT_ISSUER and JWT_AUDIENCE must be set, refusing to start")
	}

	db, err := openDB(cfg)
	if err != nil {
		log.Fatal(err)
	}
	log.Println("established a connection with database")

	var m *mailer
	if cfg.smtp.host != "" {
		m = newMailer(cfg.smtp.host, cfg.smtp.port, cfg.smtp.username, cfg.smtp.password, cfg.smtp.sender)
	}

	app := &application{
		config: cfg,
		store:  newStorage(db),
		mailer: m,
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.port),
		Handler:      composeRoutes(app),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	log.Printf("Starting %s server on port %d\n", cfg.env, cfg.port)
	err = srv.ListenAndServe()
	log.Fatal(err)
}
