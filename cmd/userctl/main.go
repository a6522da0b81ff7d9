// userctl is the admin companion to the auth service. It talks straight to
// the user table for the operations the HTTP surface deliberately does not
// expose: listing accounts, renaming, resetting tokens, and deletion.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Kingcxp/auth-service/internal/config"
	"github.com/Kingcxp/auth-service/internal/database"
	"github.com/Kingcxp/auth-service/internal/repository"
	"github.com/Kingcxp/auth-service/internal/security"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	if err := run(os.Args[1], os.Args[2:]); err != nil {
		log.Fatal(err)
	}
}

func run(command string, args []string) error {
	if command == "genpass" {
		return genpass(args)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	db, err := database.Open(cfg)
	if err != nil {
		return err
	}
	users := repository.NewUserRepository(db)

	switch command {
	case "list":
		return list(users, args)
	case "rename":
		return rename(users, args)
	case "set-token":
		return setToken(users, args)
	case "delete":
		return deleteUser(users, args)
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func list(users repository.UserRepository, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	skip := fs.Int("skip", 0, "number of users to skip")
	limit := fs.Int("limit", 0, "maximum number of users to print (0 = all)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	all, err := users.List(*skip, *limit)
	if err != nil {
		return err
	}
	for _, u := range all {
		email := ""
		if u.Email != nil {
			email = *u.Email
		}
		fmt.Printf("%d\t%s\t%s\n", u.UID, u.Name, email)
	}
	return nil
}

func rename(users repository.UserRepository, args []string) error {
	fs := flag.NewFlagSet("rename", flag.ExitOnError)
	uid := fs.Uint("uid", 0, "uid of the user to rename")
	name := fs.String("name", "", "new user name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *uid == 0 || *name == "" {
		return fmt.Errorf("rename requires -uid and -name")
	}
	return users.UpdateName(uint(*uid), *name)
}

func setToken(users repository.UserRepository, args []string) error {
	fs := flag.NewFlagSet("set-token", flag.ExitOnError)
	uid := fs.Uint("uid", 0, "uid of the user")
	token := fs.String("token", "", "client-side credential hash to store")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *uid == 0 || *token == "" {
		return fmt.Errorf("set-token requires -uid and -token")
	}
	return users.UpdateToken(uint(*uid), security.EncodeToken(*token))
}

func deleteUser(users repository.UserRepository, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	name := fs.String("name", "", "name of the user to delete")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" {
		return fmt.Errorf("delete requires -name")
	}
	return users.DeleteByName(*name)
}

func genpass(args []string) error {
	fs := flag.NewFlagSet("genpass", flag.ExitOnError)
	length := fs.Int("length", 16, "password length")
	if err := fs.Parse(args); err != nil {
		return err
	}
	pw, err := security.GeneratePassword(*length)
	if err != nil {
		return err
	}
	fmt.Println(pw)
	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: userctl <command> [flags]

commands:
  list       print users ordered by uid (-skip, -limit)
  rename     change a user's name (-uid, -name)
  set-token  replace a user's stored credential (-uid, -token)
  delete     remove a user (-name)
  genpass    generate a random password (-length)`)
}
