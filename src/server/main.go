package main

import (
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/viper"

	"github.com/lruss/haiku-finder/src/dict"
	"github.com/lruss/haiku-finder/src/haikufinder"
	"github.com/lruss/haiku-finder/src/haikufinder/db"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	conf := readConfig()

	counter := haikufinder.NewCounter(readDictionary())
	scanner := haikufinder.NewScanner(counter)

	sqlDB := openDB(conf.DBPath)
	if sqlDB != nil {
		defer sqlDB.Close()
		go haikufinder.UpdateHashes(sqlDB)
	}

	hf := haikufinder.NewHaikuFinder(conf, scanner, sqlDB)

	err := hf.Open()
	if err != nil {
		log.Fatalf("fail error opening bot: %v", err)
	}

	log.Println("Bot is now running.  Press CTRL-C to exit.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt, os.Kill)
	<-sc

	// Cleanly close down the Discord session.
	err = hf.Close()
	if err != nil {
		log.Println("error closing session,", err)
	}
}

func readConfig() haikufinder.Config {
	viper.SetDefault("reactToHaiku", true)
	viper.SetDefault("replyWithHaiku", true)
	viper.SetDefault("positiveReacts", []string{"💯", "🍙", "🍵", "🍶", "🍜"})
	viper.SetDefault("dbPath", "./haikuDB.sqlite3")
	viper.SetDefault("dictionaryPath", "")
	viper.SetDefault("debug", false)

	viper.SetEnvPrefix("HAIKU_FINDER")
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.AddConfigPath("/etc/haikufinder")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		log.Println("no config file found, using defaults,", err)
	}
	return haikufinder.Config{
		Token:          viper.GetString("token"),
		ReactToHaiku:   viper.GetBool("reactToHaiku"),
		ReplyWithHaiku: viper.GetBool("replyWithHaiku"),
		PositiveReacts: viper.GetStringSlice("positiveReacts"),
		DBPath:         viper.GetString("dbPath"),
		Debug:          viper.GetBool("debug"),
	}
}

// readDictionary loads the optional syllable dictionary. A missing or
// unreadable dictionary is reported and the bot runs on pure heuristics.
func readDictionary() map[string]int {
	path := viper.GetString("dictionaryPath")
	if path == "" {
		return nil
	}
	seed, err := dict.LoadFile(path)
	if err != nil {
		log.Println("could not load the dictionary, continuing without it,", err)
		return nil
	}
	log.Printf("loaded %d dictionary entries from %s", len(seed), path)
	return seed
}

func openDB(path string) *sql.DB {
	if path == "" {
		return nil
	}
	sqlDB, err := sql.Open("sqlite3", path)
	if err != nil {
		log.Println("could not open database, continuing without persistence,", err)
		return nil
	}
	if err := db.BootstrapDB(sqlDB); err != nil {
		log.Println("could not bootstrap database, continuing without persistence,", err)
		sqlDB.Close()
		return nil
	}
	return sqlDB
}
