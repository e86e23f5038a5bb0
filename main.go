package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"lifeos/handlers"
	"lifeos/middleware"
	"lifeos/prefs"
	"lifeos/remote"
	"lifeos/security"
	"lifeos/services"
	"lifeos/store"

	"github.com/gorilla/mux"
)

func main() {
	localOnly := flag.Bool("local-only", false, "Run without a remote backend")
	prefsPath := flag.String("prefs", "", "Path to the preference database")
	flag.Parse()

	isDevelopment := os.Getenv("APP_ENV") != "production" &&
		os.Getenv("ENV") != "production"
	if isDevelopment {
		log.Println("Running in development environment")
	}

	encryptionKey := os.Getenv("ENCRYPTION_KEY")
	if encryptionKey == "" {
		log.Println("Warning: ENCRYPTION_KEY not set, using a default key. This is NOT secure for production!")
		encryptionKey = "default-key-for-development-only"
	}
	security.InitializeEncryption(encryptionKey)

	// Open the local preference store.
	path := *prefsPath
	if path == "" {
		path = os.Getenv("PREFS_DB")
	}
	if path == "" {
		path = "./prefs.db"
	}
	preferences, err := prefs.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer preferences.Close()

	log.Println("Initializing Firebase Admin SDK...")
	if err := middleware.InitializeFirebase(); err != nil {
		log.Printf("Warning: Failed to initialize Firebase: %v", err)
		log.Println("Auth token verification will be disabled!")
	}

	appStore := store.New()

	remoteClient := buildRemoteClient(preferences, *localOnly)
	if remoteClient == nil {
		log.Println("No remote backend configured, running local-only")
	}

	services.StartScheduler(appStore)

	h := handlers.New(appStore, preferences, remoteClient)

	r := mux.NewRouter()
	r.Use(middleware.EnableCORS)

	// Register routes both bare and under /api for client compatibility.
	h.RegisterRoutes(r)
	h.RegisterRoutes(r.PathPrefix("/api").Subrouter())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Handler:      r,
		Addr:         ":" + port,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	log.Printf("Starting server on port %s...", port)
	log.Fatal(srv.ListenAndServe())
}

// buildRemoteClient resolves the remote endpoint and key. The key comes
// from the environment when present and is stashed encrypted in the
// preference store for later runs.
func buildRemoteClient(preferences *prefs.Store, localOnly bool) *remote.Client {
	if localOnly {
		return nil
	}

	baseURL := os.Getenv("REMOTE_API_URL")
	if baseURL == "" {
		return nil
	}

	apiKey := os.Getenv("REMOTE_API_KEY")
	if apiKey != "" {
		encrypted, err := security.Encrypt(apiKey)
		if err != nil {
			log.Printf("Warning: failed to encrypt remote API key: %v", err)
		} else if err := preferences.Set(prefs.KeyRemoteAPIKey, encrypted); err != nil {
			log.Printf("Warning: failed to store remote API key: %v", err)
		}
	} else {
		stored, err := preferences.Get(prefs.KeyRemoteAPIKey)
		if err != nil || stored == "" {
			log.Println("Warning: REMOTE_API_KEY not set and no stored key found")
			return nil
		}
		apiKey, err = security.Decrypt(stored)
		if err != nil {
			log.Printf("Warning: failed to decrypt stored remote API key: %v", err)
			return nil
		}
	}

	return remote.NewClient(baseURL, apiKey)
}
