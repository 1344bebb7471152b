package main

import (
	"log"
	"time"

	"fashionretail/internal/config"
	"fashionretail/internal/handler"
	"fashionretail/internal/infra/db"
	"fashionretail/internal/infra/kv"
	infraRepo "fashionretail/internal/infra/repository"
	"fashionretail/internal/server"
	"fashionretail/internal/usecase"
	auth "fashionretail/internal/usecase/auth_usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

// HS256のアクセストークン発行器。
type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func newJWTIssuer(secret string) *jwtIssuer {
	//アクセストークンは15分
	return &jwtIssuer{
		secret:    []byte(secret),
		accessTTL: 15 * time.Minute,
	}
}

func (i *jwtIssuer) Issue(userID string, roles []string, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":   userID,
		"roles": roles,
		"iat":   now.Unix(),
		"exp":   expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func main() {
	//.envは無くてもよい（本番は環境変数だけ）
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	//DB接続とKVテーブルの作成
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := kv.AutoMigrate(gormDB); err != nil {
		log.Fatal(err)
	}

	//エンティティごとのKVテーブル
	userTable := kv.NewGormTable(gormDB, "User")
	productTable := kv.NewGormTable(gormDB, "Product")
	cartItemTable := kv.NewGormTable(gormDB, "CartItem")
	orderTable := kv.NewGormTable(gormDB, "Order")

	//Repository生成
	userRepo := infraRepo.NewUserRepository(userTable)
	productRepo := infraRepo.NewProductRepository(productTable)
	cartItemRepo := infraRepo.NewCartItemRepository(cartItemTable)
	orderRepo := infraRepo.NewOrderRepository(orderTable)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}

	//bcrypt（会員登録：Hash / ログイン：Verify）
	hasher := auth.NewBcryptPasswordHasher(12)
	verifier := auth.NewBcryptPasswordVerifier()

	//JWT issuer
	issuer := newJWTIssuer(cfg.JWTSecret)

	//Usecase生成
	registerUC := auth.NewRegisterUserUsecase(userRepo, hasher, idGen, clock)
	loginUC := auth.NewLoginUsecase(userRepo, verifier, issuer, clock)
	productUC := usecase.NewProductUsecase(productRepo, idGen)
	cartUC := usecase.NewCartUsecase(cartItemRepo, productRepo, idGen)
	orderUC := usecase.NewOrderUsecase(orderRepo, cartItemRepo, productRepo, idGen, clock)

	//Handler生成
	handlers := server.Handlers{
		Auth:    handler.NewAuthHandler(registerUC, loginUC),
		Product: handler.NewProductHandler(productUC),
		Cart:    handler.NewCartHandler(cartUC),
		Order:   handler.NewOrderHandler(orderUC),
	}

	//Server起動
	e := server.New(cfg, handlers)

	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	if err := server.Start(e, addr); err != nil {
		log.Fatal(err)
	}
}
