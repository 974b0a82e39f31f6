package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
)

func (a *App) ListUsers(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Not logged in")
		return nil
	}

	users, err := a.api.ListUsers(ctx, a.token)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	for _, u := range users {
		fmt.Printf("%d: %s %s <%s> %s\n", u.ID, u.Firstname, u.Lastname, u.Email, u.Role)
	}
	return nil
}

func (a *App) UpdateProfile(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Not logged in")
		return nil
	}

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
	description, err := GetSimpleText(a.reader, "Enter description", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	user, err := a.api.UpdateUser(ctx, a.token, a.user.ID, lastname, firstname, description, a.user.ImgProfile)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	a.user = user
	fmt.Println("Profile updated")
	return nil
}

func (a *App) DeleteUser(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Not logged in")
		return nil
	}

	idText, err := GetSimpleText(a.reader, "Enter user id to delete", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	id, err := strconv.ParseInt(idText, 10, 64)
	if err != nil {
		fmt.Println("invalid id")
		return err
	}

	if err := a.api.DeleteUser(ctx, a.token, id); err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Println("Deleted")
	return nil
}

func (a *App) AvatarUploadURL(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Not logged in")
		return nil
	}

	key, url, err := a.api.AvatarUploadURL(ctx, a.token)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("Upload your avatar with: curl -X PUT --upload-file <file> '%s'\n", url)
	fmt.Printf("Object key: %s\n", key)
	return nil
}
