package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/socialgraph/friendsdb/internal/testutil"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	flag.Parse()

	usage := `
Run the friendsdb MariaDB test container with the environment variables from the .env file.

Usage:

testcontainers [-h] [-f ENV_FILE_PATH]

ENV_FILE_PATH: path to the .env file

example
  testcontainers -f /path/to/something/.env
`
	// if -h flag print usage and return
	if showHelp {
		fmt.Println(usage)
		return
	}

	if envFilename != "" {
		log.Printf("Loading environment variables from %s\n", envFilename)
		if err := godotenv.Load(envFilename); err != nil {
			log.Fatalf("Failed to load environment variables: %v\n", err)
		}
	} else {
		log.Printf("No environment file specified, using current environment variables\n")
	}

	ctx := context.Background()

	dbc, err := testutil.StartMariaDB(ctx)
	if err != nil {
		log.Fatalf("Failed to start MariaDB container: %v\n", err)
	}

	log.Printf("MariaDB ready on %s:%s (database %s)\n", dbc.Host, dbc.Port, dbc.Database)
	log.Printf("DSN: %s\n", dbc.DSN())
	log.Printf("Export for the server:\n")
	log.Printf("  DB_TYPE=mariadb DB_HOST=%s DB_PORT=%s DB_DATABASE=%s DB_USER=%s DB_PASSWORD=%s\n",
		dbc.Host, dbc.Port, dbc.Database, dbc.User, dbc.Password)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGTSTP, syscall.SIGQUIT)
	<-sigs

	log.Println("Terminating container...")
	if err := dbc.Terminate(ctx); err != nil {
		log.Fatalf("Failed to terminate container: %v\n", err)
	}
}
