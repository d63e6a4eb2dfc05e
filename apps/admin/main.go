package main

import (
	"fmt"
	"log"
	"os"

	"github.com/RaoulBonsso/GM/core"
	"github.com/RaoulBonsso/GM/core/report"
	"github.com/RaoulBonsso/GM/core/school"
	logsvc "github.com/RaoulBonsso/GM/services/logger"
	inmemdb "github.com/RaoulBonsso/GM/storage/database/inmem"
)

func main() {
	conf, err := core.LoadConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stderr, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug && conf.RollbarToken != "")

	// set up storage
	db, err := inmemdb.Open()
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
	}
	inmemdb.Seed(db)

	// start CLI
	validate, translator := core.NewValidator()
	cli := commandLine{
		svc:      school.NewService(inmemdb.NewSchoolRepository(db), validate, translator, school.NewSchoolCalendar(conf.Holidays)),
		reports:  report.NewGenerator(report.DefaultConfig().WithSchool(conf.School)),
		dir:      conf.ReportsDir,
		stdout:   os.Stdout,
		stdoutFd: int(os.Stdout.Fd()),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error(fmt.Sprintf("error: %s", err), err)
		}
		os.Exit(1)
	}
}
