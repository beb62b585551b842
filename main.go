package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "LMS-backend/docs"
	"LMS-backend/internal/library/books"
	"LMS-backend/internal/library/ledger"
	"LMS-backend/internal/library/lifecycle"
	"LMS-backend/internal/platform/auth"
	"LMS-backend/internal/platform/db"
)

// @title Library Management API
// @version 1.0
// @description 蔵書の貸出・予約・返却と利用者台帳を管理するAPI
// @BasePath /api/v1
func main() {
	// 設定読み込み
	cfg, err := db.LoadConfig("config/config.yaml")
	if err != nil {
		panic(err)
	}

	// 動作モード取得
	mode := cfg.Mode
	log.Printf("[INFO] mode:%s\n", mode)

	if cfg.Mode != "dev" && cfg.Mode != "release" {
		fmt.Println("Usage: go run main.go [dev|release]")
		return
	}

	conn, err := db.Connect(cfg.DB)
	if err != nil {
		panic(err)
	}
	defer conn.Close()

	log.Printf("[INFO] connected to DB: %s", cfg.DB.DBName)

	secret := []byte(cfg.JWT.Secret)
	if len(secret) == 0 {
		panic("jwt.secret is not set in config")
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	_ = r.SetTrustedProxies(nil)

	if mode == "dev" {
		// CORS（開発中のみ必要）
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowCredentials: true,
		}))
	}

	// ヘルス
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	// API仕様（開発中のみ公開）
	if mode == "dev" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	bookSvc := books.NewService(conn)
	ledgerSvc := ledger.NewService(conn)
	lifecycleSvc := lifecycle.NewService(conn)

	// /api/v1
	api := r.Group("/api/v1")
	authSvc := auth.NewService(conn, secret)
	auth.RegisterRoutes(api, authSvc)

	// 要認証
	authed := api.Group("", auth.RequireAuth(secret))
	auth.RegisterMemberRoutes(authed, authSvc)
	books.RegisterRoutes(authed, bookSvc)
	ledger.RegisterRoutes(authed, ledgerSvc)
	lifecycle.RegisterRoutes(authed, lifecycleSvc)

	// 司書のみ
	librarian := authed.Group("", auth.RequireRole(auth.RoleLibrarian))
	auth.RegisterLibrarianRoutes(librarian, authSvc)
	books.RegisterLibrarianRoutes(librarian, bookSvc)
	lifecycle.RegisterLibrarianRoutes(librarian, lifecycleSvc)

	srv := &http.Server{
		Addr:    ":8443",
		Handler: r,
	}

	var certFile, keyFile string

	// TLS設定
	if mode == "dev" {
		//開発用
		certFile = fmt.Sprintf("config/tls/dev/%s", cfg.Certificate.Cert)
		keyFile = fmt.Sprintf("config/tls/dev/%s", cfg.Certificate.Key)
	} else {
		//本番用
		certFile = fmt.Sprintf("config/tls/release/%s", cfg.Certificate.Cert)
		keyFile = fmt.Sprintf("config/tls/release/%s", cfg.Certificate.Key)
	}

	go func() {
		log.Println("[INFO] listening on https://0.0.0.0:8443")
		if err := srv.ListenAndServeTLS(certFile, keyFile); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Println("[INFO] shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
