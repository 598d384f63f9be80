package cli

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/farhankamalkhan/saucedemo/internal/config"
	"github.com/farhankamalkhan/saucedemo/internal/handlers"
	"github.com/farhankamalkhan/saucedemo/internal/store"
)

// ServerDependencies holds all dependencies needed for the storefront server
type ServerDependencies struct {
	ServerConfig            config.ServerConfig
	Logger                  *slog.Logger
	LoginHandler            http.Handler
	LogoutHandler           http.Handler
	InventoryHandler        http.Handler
	CartHandler             http.Handler
	CartUpdateHandler       http.Handler
	CheckoutStepOneHandler  http.Handler
	CheckoutStepTwoHandler  http.Handler
	CheckoutCompleteHandler http.Handler
}

// BuildStorefrontDeps wires the storefront handlers around a store. The
// serve command and the e2e suite's in-process storefront both go through
// here so the two never drift apart.
func BuildStorefrontDeps(serverCfg config.ServerConfig, st *store.Store, logger *slog.Logger) (ServerDependencies, error) {
	deps := ServerDependencies{ServerConfig: serverCfg, Logger: logger}

	loginHandler, err := handlers.NewLoginHandler(st)
	if err != nil {
		return deps, fmt.Errorf("failed to create login handler: %w", err)
	}
	deps.LoginHandler = loginHandler
	deps.LogoutHandler = handlers.NewLogoutHandler(st)

	inventoryHandler, err := handlers.NewInventoryHandler(st)
	if err != nil {
		return deps, fmt.Errorf("failed to create inventory handler: %w", err)
	}
	deps.InventoryHandler = inventoryHandler

	cartHandler, err := handlers.NewCartHandler(st)
	if err != nil {
		return deps, fmt.Errorf("failed to create cart handler: %w", err)
	}
	deps.CartHandler = cartHandler
	deps.CartUpdateHandler = handlers.NewCartUpdateHandler(st)

	stepOneHandler, err := handlers.NewCheckoutStepOneHandler(st)
	if err != nil {
		return deps, fmt.Errorf("failed to create checkout step one handler: %w", err)
	}
	deps.CheckoutStepOneHandler = stepOneHandler

	stepTwoHandler, err := handlers.NewCheckoutStepTwoHandler(st)
	if err != nil {
		return deps, fmt.Errorf("failed to create checkout step two handler: %w", err)
	}
	deps.CheckoutStepTwoHandler = stepTwoHandler

	completeHandler, err := handlers.NewCheckoutCompleteHandler(st)
	if err != nil {
		return deps, fmt.Errorf("failed to create checkout complete handler: %w", err)
	}
	deps.CheckoutCompleteHandler = completeHandler

	return deps, nil
}

// NewRouter assembles the storefront routes
func NewRouter(deps ServerDependencies) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	if deps.Logger != nil {
		r.Use(handlers.RequestLogger(deps.Logger))
	}

	r.Handle("/", deps.LoginHandler)
	r.Handle("/logout", deps.LogoutHandler)
	r.Handle("/inventory.html", deps.InventoryHandler)
	r.Handle("/cart.html", deps.CartHandler)
	r.Handle("/cart/update", deps.CartUpdateHandler)
	r.Handle("/checkout-step-one.html", deps.CheckoutStepOneHandler)
	r.Handle("/checkout-step-two.html", deps.CheckoutStepTwoHandler)
	r.Handle("/checkout-complete.html", deps.CheckoutCompleteHandler)

	return r
}

// RunServe starts the storefront web server
func RunServe(deps ServerDependencies) error {
	listener, server, err := StartServer(deps)
	if err != nil {
		return err
	}
	defer listener.Close()

	return WaitForShutdown(server, nil)
}

// StartServer creates and starts the HTTP server, returning the listener and server
func StartServer(deps ServerDependencies) (net.Listener, *http.Server, error) {
	// Create listener
	addr := fmt.Sprintf(":%s", deps.ServerConfig.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create listener: %w", err)
	}

	// Create HTTP server
	server := &http.Server{
		Handler: NewRouter(deps),
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Storefront listening on %s", listener.Addr().String())
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	return listener, server, nil
}

// WaitForShutdown waits for a shutdown signal and gracefully shuts down the server
// If shutdown channel is nil, a new channel will be created and registered with signal.Notify
func WaitForShutdown(server *http.Server, shutdown chan os.Signal) error {
	return WaitForShutdownWithTimeout(server, shutdown, 30*time.Second)
}

// WaitForShutdownWithTimeout allows specifying a custom shutdown timeout (primarily for testing)
func WaitForShutdownWithTimeout(server *http.Server, shutdown chan os.Signal, shutdownTimeout time.Duration) error {
	// Channel to listen for interrupt or terminate signals
	if shutdown == nil {
		shutdown = make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	}

	// Wait for shutdown signal
	sig := <-shutdown
	log.Printf("Received signal: %v, shutting down server...", sig)

	// Give outstanding requests time to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Attempt graceful shutdown
	if err := server.Shutdown(ctx); err != nil {
		// Force close the server after timeout. http.Server.Close does not
		// propagate listener close errors, so this rarely fails.
		if err := server.Close(); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	log.Println("Server stopped")
	return nil
}
