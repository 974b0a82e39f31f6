package cli

import (
	"context"
	"fmt"
	"os"
)

func (a *App) Register(ctx context.Context) error {

	lastname, err := GetSimpleText(a.reader, "Enter last name", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	firstname, err := GetSimpleText(a.reader, "Enter first name", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	password, err := GetPassword("Enter password", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	confirm, err := GetPassword("Confirm password", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	user, err := a.api.Register(ctx, lastname, firstname, email, string(password), string(confirm))
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("Registered %s %s <%s>\n", user.Firstname, user.Lastname, user.Email)
	return nil
}

func (a *App) Login(ctx context.Context) error {

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	password, err := GetPassword("Enter password", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	user, token, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	a.user = user
	a.token = token

	fmt.Println("Success!")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.token = ""
	a.user = nil
	fmt.Println("Logged out")
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Not logged in")
		return nil
	}

	claims, err := a.api.Verify(ctx, a.token)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("%v %v <%v> role=%v\n", claims["firstname"], claims["lastname"], claims["email"], claims["role"])
	return nil
}
