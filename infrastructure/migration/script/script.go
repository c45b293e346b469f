package main

import (
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/lib/pq"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/margin-insights-api/internal/config"
	"github.com/vfg2006/margin-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/margin-insights-api/pkg/middleware"
)

const (
	idLength   = 12
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	salesDays  = 45
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS businesses (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS business_configs (
		business_id            TEXT PRIMARY KEY REFERENCES businesses(id),
		target_margin_percent  NUMERIC,
		average_tax_percent    NUMERIC,
		target_cmv_percent     NUMERIC,
		monthly_revenue_target NUMERIC
	)`,
	`CREATE TABLE IF NOT EXISTS channel_fee_configs (
		id           TEXT PRIMARY KEY,
		business_id  TEXT NOT NULL REFERENCES businesses(id),
		channel_name TEXT NOT NULL,
		fee_percent  NUMERIC NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS fixed_costs (
		id            TEXT PRIMARY KEY,
		business_id   TEXT NOT NULL REFERENCES businesses(id),
		description   TEXT NOT NULL,
		monthly_value NUMERIC NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS ingredients (
		id          TEXT PRIMARY KEY,
		business_id TEXT NOT NULL REFERENCES businesses(id),
		name        TEXT NOT NULL,
		unit        TEXT,
		unit_cost   NUMERIC NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS ingredient_recipes (
		ingredient_id       TEXT NOT NULL REFERENCES ingredients(id),
		child_ingredient_id TEXT NOT NULL REFERENCES ingredients(id),
		quantity            NUMERIC NOT NULL,
		PRIMARY KEY (ingredient_id, child_ingredient_id)
	)`,
	`CREATE TABLE IF NOT EXISTS ingredient_price_history (
		id                TEXT PRIMARY KEY,
		business_id       TEXT NOT NULL REFERENCES businesses(id),
		ingredient_id     TEXT NOT NULL REFERENCES ingredients(id),
		previous_price    NUMERIC NOT NULL,
		new_price         NUMERIC NOT NULL,
		variation_percent NUMERIC NOT NULL,
		created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id          TEXT PRIMARY KEY,
		business_id TEXT NOT NULL REFERENCES businesses(id),
		name        TEXT NOT NULL,
		category    TEXT,
		sales_price NUMERIC NOT NULL DEFAULT 0,
		ativo       BOOLEAN NOT NULL DEFAULT TRUE,
		yield       NUMERIC,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS product_ingredients (
		product_id    TEXT NOT NULL REFERENCES products(id),
		ingredient_id TEXT NOT NULL REFERENCES ingredients(id),
		quantity      NUMERIC NOT NULL,
		PRIMARY KEY (product_id, ingredient_id)
	)`,
	`CREATE TABLE IF NOT EXISTS product_price_history (
		id                TEXT PRIMARY KEY,
		business_id       TEXT NOT NULL REFERENCES businesses(id),
		product_id        TEXT NOT NULL REFERENCES products(id),
		previous_price    NUMERIC NOT NULL,
		new_price         NUMERIC NOT NULL,
		variation_percent NUMERIC NOT NULL,
		reason            TEXT,
		created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id                  TEXT PRIMARY KEY,
		business_id         TEXT NOT NULL REFERENCES businesses(id),
		product_id          TEXT REFERENCES products(id),
		total_value         NUMERIC NOT NULL,
		quantity            NUMERIC NOT NULL DEFAULT 1,
		channel             TEXT,
		date                TIMESTAMPTZ NOT NULL,
		product_sales_price NUMERIC,
		product_unit_cost   NUMERIC
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_business_date ON sales (business_id, date)`,
	`CREATE TABLE IF NOT EXISTS insights (
		id          TEXT PRIMARY KEY,
		business_id TEXT NOT NULL REFERENCES businesses(id),
		kind        TEXT NOT NULL,
		status      TEXT NOT NULL,
		headline    TEXT NOT NULL,
		detail      TEXT NOT NULL,
		priority    INTEGER NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_insights_business_created ON insights (business_id, created_at DESC)`,
}

type seedIngredient struct {
	key      string
	name     string
	unit     string
	unitCost float64
	recipe   map[string]float64
}

type seedProduct struct {
	key        string
	name       string
	category   string
	salesPrice float64
	yield      *float64
	bom        map[string]float64
	dailySales int
}

func generateID() string {
	id, err := gonanoid.Generate(characters, idLength)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao gerar id")
	}
	return id
}

func floatPtr(v float64) *float64 {
	return &v
}

func createSchema(db *sql.DB) {
	logrus.Infof("Criando schema (%d comandos)...", len(schema))
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			logrus.WithError(err).Fatalf("ERRO ao executar: %s", stmt)
		}
	}
	logrus.Info("Schema criado com sucesso")
}

func mustExec(tx *sql.Tx, query string, args ...any) {
	if _, err := tx.Exec(query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			logrus.WithFields(logrus.Fields{"code": pqErr.Code, "detail": pqErr.Detail}).Error("ERRO do PostgreSQL")
		}
		logrus.WithError(err).Fatalf("ERRO ao executar: %s", query)
	}
}

// seedBakery cria uma padaria de demonstração com ficha técnica, canais, custos fixos e vendas
func seedBakery(tx *sql.Tx, now time.Time) string {
	businessID := generateID()
	mustExec(tx, `INSERT INTO businesses (id, name) VALUES ($1, $2)`, businessID, "Padaria Demonstração")
	mustExec(tx, `INSERT INTO business_configs (business_id, target_margin_percent, average_tax_percent, target_cmv_percent, monthly_revenue_target)
		VALUES ($1, $2, $3, $4, $5)`, businessID, 30, 8, 35, 30000)

	for i, fee := range []struct {
		channel string
		percent float64
	}{{"Balcão", 0}, {"iFood", 27}, {"WhatsApp", 0}} {
		mustExec(tx, `INSERT INTO channel_fee_configs (id, business_id, channel_name, fee_percent, created_at) VALUES ($1, $2, $3, $4, $5)`,
			generateID(), businessID, fee.channel, fee.percent, now.Add(time.Duration(i)*time.Second))
	}

	for _, cost := range []struct {
		description string
		value       float64
	}{{"Aluguel", 3500}, {"Energia", 900}, {"Salários", 6200}} {
		mustExec(tx, `INSERT INTO fixed_costs (id, business_id, description, monthly_value) VALUES ($1, $2, $3, $4)`,
			generateID(), businessID, cost.description, cost.value)
	}

	ingredients := []seedIngredient{
		{key: "farinha", name: "Farinha de trigo", unit: "kg", unitCost: 5.5},
		{key: "manteiga", name: "Manteiga", unit: "kg", unitCost: 42},
		{key: "acucar", name: "Açúcar", unit: "kg", unitCost: 4.8},
		{key: "ovo", name: "Ovo", unit: "un", unitCost: 0.9},
		{key: "chocolate", name: "Chocolate meio amargo", unit: "kg", unitCost: 48},
		{key: "queijo", name: "Queijo minas", unit: "kg", unitCost: 38},
		{key: "polvilho", name: "Polvilho", unit: "kg", unitCost: 9},
		{key: "massa", name: "Massa folhada", unit: "kg", recipe: map[string]float64{
			"farinha": 0.55, "manteiga": 0.35, "acucar": 0.05,
		}},
	}

	ingredientIDs := make(map[string]string, len(ingredients))
	for _, ing := range ingredients {
		id := generateID()
		ingredientIDs[ing.key] = id
		mustExec(tx, `INSERT INTO ingredients (id, business_id, name, unit, unit_cost) VALUES ($1, $2, $3, $4, $5)`,
			id, businessID, ing.name, ing.unit, ing.unitCost)
	}
	for _, ing := range ingredients {
		for child, qty := range ing.recipe {
			mustExec(tx, `INSERT INTO ingredient_recipes (ingredient_id, child_ingredient_id, quantity) VALUES ($1, $2, $3)`,
				ingredientIDs[ing.key], ingredientIDs[child], qty)
		}
	}

	// manteiga subiu duas vezes no mês: 36 -> 39 -> 42
	for i, change := range []struct {
		previous, next float64
		daysAgo        int
	}{{36, 39, 20}, {39, 42, 6}} {
		variation := (change.next - change.previous) / change.previous * 100
		mustExec(tx, `INSERT INTO ingredient_price_history (id, business_id, ingredient_id, previous_price, new_price, variation_percent, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			generateID(), businessID, ingredientIDs["manteiga"], change.previous, change.next, variation,
			now.AddDate(0, 0, -change.daysAgo).Add(time.Duration(i)*time.Minute))
	}

	products := []seedProduct{
		{key: "croissant", name: "Croissant", category: "Folhados", salesPrice: 9, yield: floatPtr(20),
			bom: map[string]float64{"massa": 1.2, "ovo": 2}, dailySales: 14},
		{key: "bolo", name: "Bolo de chocolate", category: "Bolos", salesPrice: 65,
			bom: map[string]float64{"farinha": 0.4, "acucar": 0.3, "ovo": 4, "chocolate": 0.35, "manteiga": 0.2}, dailySales: 2},
		{key: "paodequeijo", name: "Pão de queijo", category: "Salgados", salesPrice: 4.5, yield: floatPtr(40),
			bom: map[string]float64{"polvilho": 1, "queijo": 0.5, "ovo": 4}, dailySales: 25},
		{key: "cafe", name: "Café coado", category: "Bebidas", salesPrice: 6, dailySales: 20},
	}

	productIDs := make(map[string]string, len(products))
	for _, p := range products {
		id := generateID()
		productIDs[p.key] = id
		mustExec(tx, `INSERT INTO products (id, business_id, name, category, sales_price, ativo, yield) VALUES ($1, $2, $3, $4, $5, TRUE, $6)`,
			id, businessID, p.name, p.category, p.salesPrice, p.yield)
		for ing, qty := range p.bom {
			mustExec(tx, `INSERT INTO product_ingredients (product_id, ingredient_id, quantity) VALUES ($1, $2, $3)`,
				id, ingredientIDs[ing], qty)
		}
	}

	count := seedSales(tx, businessID, products, productIDs, now)
	logrus.WithFields(logrus.Fields{
		"business_id": businessID,
		"ingredients": len(ingredients),
		"products":    len(products),
		"sales":       count,
	}).Info("Padaria de demonstração criada")

	return businessID
}

// seedSales gera vendas diárias com sorteio fixo para o resultado ser reproduzível
func seedSales(tx *sql.Tx, businessID string, products []seedProduct, productIDs map[string]string, now time.Time) int {
	rng := rand.New(rand.NewSource(42))
	channels := []string{"Balcão", "Balcão", "Balcão", "iFood", "WhatsApp"}

	stmt, err := tx.Prepare(`INSERT INTO sales (id, business_id, product_id, total_value, quantity, channel, date, product_sales_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao preparar statement para sales")
	}
	defer stmt.Close()

	count := 0
	for day := salesDays; day >= 0; day-- {
		date := time.Date(now.Year(), now.Month(), now.Day(), 8, 0, 0, 0, now.Location()).AddDate(0, 0, -day)
		if date.After(now) {
			continue
		}

		for _, p := range products {
			for i := 0; i < p.dailySales/2+rng.Intn(p.dailySales+1); i++ {
				quantity := float64(1 + rng.Intn(3))
				at := date.Add(time.Duration(rng.Intn(10*60)) * time.Minute)
				if at.After(now) {
					at = now
				}

				if _, err := stmt.Exec(generateID(), businessID, productIDs[p.key], p.salesPrice*quantity, quantity,
					channels[rng.Intn(len(channels))], at, p.salesPrice); err != nil {
					logrus.WithError(err).Fatal("ERRO ao inserir venda")
				}
				count++
			}
		}
	}

	return count
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao carregar configuração")
	}

	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao conectar ao banco de dados")
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logrus.WithError(err).Fatal("ERRO ao verificar conexão com o banco")
	}
	logrus.Info("Conexão com o banco de dados estabelecida com sucesso")

	createSchema(db)

	tx, err := db.Begin()
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao iniciar transação")
	}

	startTime := time.Now()
	businessID := seedBakery(tx, startTime)

	if err := tx.Commit(); err != nil {
		logrus.WithError(err).Fatal("ERRO ao fazer commit da transação")
	}
	logrus.Infof("Seed concluído em %v", time.Since(startTime))

	token, err := authenticating.NewService(cfg).GenerateToken("demo", businessID, middleware.RoleOwner, 7*24*time.Hour)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao gerar token de demonstração")
	}
	fmt.Printf("\nbusiness_id: %s\ntoken:       %s\n", businessID, token)
}
