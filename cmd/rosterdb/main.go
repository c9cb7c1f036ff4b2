package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fulldump/goconfig"

	"rosterdb/bootstrap"
	"rosterdb/configuration"
	"rosterdb/menu"
	"rosterdb/roster"
	"rosterdb/service"
)

var banner = `
 ______          _            ______ ______
 | ___ \        | |           |  _  \| ___ \
 | |_/ /___  ___| |_ ___ _ __ | | | || |_/ /
 |    // _ \/ __| __/ _ \ '__|| | | || ___ \
 | |\ \ (_) \__ \ ||  __/ |   | |/ / | |_/ /
 \_| \_\___/|___/\__\___|_|   |___/  \____/
                    version ` + bootstrap.VERSION + `
`

func main() {

	c := configuration.Default()
	goconfig.Read(&c)

	if c.Version {
		fmt.Println("Version:", bootstrap.VERSION)
		return
	}

	if c.ShowBanner {
		fmt.Println(banner)
	}

	if c.ShowConfig {
		e := json.NewEncoder(os.Stdout)
		e.SetIndent("", "    ")
		e.Encode(c)
	}

	if c.Interactive {
		s := service.NewService(roster.NewStore(), c.DataFile)
		if err := s.Load(); err != nil {
			fmt.Printf("WARNING: load roster: %s\n", err.Error())
		}
		menu.New(s, os.Stdin, os.Stdout).Run()
		return
	}

	start, _ := bootstrap.Bootstrap(&c)
	start()
}
