// Loja Virtual API: donation marketplace backend.
//
//	@title       Loja Virtual API
//	@version     1.0
//	@description Users list second-hand products, order them and earn points/coins.
package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggoFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rogercorrente/Tcc-LojaVirtual-BackEnd/docs"
	"github.com/rogercorrente/Tcc-LojaVirtual-BackEnd/internal/cart"
	"github.com/rogercorrente/Tcc-LojaVirtual-BackEnd/internal/config"
	"github.com/rogercorrente/Tcc-LojaVirtual-BackEnd/internal/httpx"
	"github.com/rogercorrente/Tcc-LojaVirtual-BackEnd/internal/metrics"
	"github.com/rogercorrente/Tcc-LojaVirtual-BackEnd/internal/order"
	"github.com/rogercorrente/Tcc-LojaVirtual-BackEnd/internal/product"
	"github.com/rogercorrente/Tcc-LojaVirtual-BackEnd/internal/rating"
	"github.com/rogercorrente/Tcc-LojaVirtual-BackEnd/internal/user"
)

func main() {
	cfg := config.Load()

	pool, err := pgxpool.New(context.Background(), cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("[db] connect: %v", err)
	}
	defer pool.Close()

	users := user.NewPGRepo(pool)
	products := product.NewPGRepo(pool)
	carts := cart.NewPGRepo(pool)
	orders := order.NewPGRepo(pool)
	ratings := rating.NewPGRepo(pool)

	m := metrics.NewServerMetrics("api")

	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(), httpx.Metrics(m))

	r.GET("/healthz", func(c *gin.Context) { c.String(200, "ok") })
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggoFiles.Handler))

	r.POST("/register", registerHandler(users))
	r.POST("/login", loginHandler(users))
	r.GET("/users/:id", getUserHandler(users))
	r.GET("/ranking", rankingHandler(users))

	r.POST("/products", createProductHandler(products))
	r.GET("/products", listProductsHandler(products))

	r.POST("/cart/items", addCartItemHandler(carts))
	r.DELETE("/cart/items", removeCartItemHandler(carts))
	r.GET("/cart/:user_id", getCartHandler(carts))

	r.POST("/orders/checkout", checkoutHandler(orders))
	r.GET("/orders/user/:user_id", listOrdersByUserHandler(orders))
	r.GET("/orders/:id/items", getOrderItemsHandler(orders))

	r.POST("/orders/:id/ratings", rateOrderHandler(ratings))
	r.GET("/orders/:id/ratings", getOrderRatingsHandler(ratings))
	r.GET("/donors/:id/ratings", getDonorRatingsHandler(ratings))

	log.Printf("api listening on %s", cfg.HTTPAddr)
	log.Fatal(r.Run(cfg.HTTPAddr))
}
