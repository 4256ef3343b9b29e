package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/mcpcare/internal/client/models"
	"github.com/dmitrijs2005/mcpcare/internal/client/services"
)

func (a *App) Signup(ctx context.Context) error {
	var form models.SignupForm

	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Full name", &form.Name},
		{"Aadhaar number", &form.AadhaarNumber},
		{"MCP card number", &form.MCPCardNumber},
		{"Mobile number", &form.MobileNumber},
		{"Email", &form.Email},
	}
	for _, f := range fields {
		v, err := GetSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			fmt.Fprintln(a.out, err.Error())
			return err
		}
		*f.dst = v
	}

	pw, err := GetPassword(a.out, "Password")
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	defer wipe(pw)

	confirm, err := GetPassword(a.out, "Confirm password")
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	defer wipe(confirm)

	form.Password, form.ConfirmPassword = string(pw), string(confirm)

	msg, err := a.authService.Signup(ctx, form)
	if err != nil {
		fmt.Fprintf(a.out, "Signup failed: %v\n", err)
		return err
	}

	fmt.Fprintln(a.out, msg)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	pw, err := GetPassword(a.out, "Password")
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	defer wipe(pw)

	if err := a.authService.Login(ctx, email, pw); err != nil {
		fmt.Fprintf(a.out, "Login failed: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", email)
	return nil
}

func (a *App) Profile(ctx context.Context) error {
	p, err := a.authService.Profile(ctx)
	switch {
	case errors.Is(err, services.ErrNotLoggedIn):
		fmt.Fprintln(a.out, "Please log in first")
		return err
	case err != nil:
		fmt.Fprintf(a.out, "Profile failed: %v\n", err)
		return err
	case p == nil:
		fmt.Fprintln(a.out, "Profile not found")
		return nil
	}

	fmt.Fprintf(a.out, "ID:              %s\n", p.ID)
	fmt.Fprintf(a.out, "Name:            %s\n", p.Name)
	fmt.Fprintf(a.out, "Email:           %s\n", p.Email)
	fmt.Fprintf(a.out, "Mobile number:   %s\n", p.MobileNumber)
	fmt.Fprintf(a.out, "Aadhaar number:  %s\n", p.AadhaarNumber)
	fmt.Fprintf(a.out, "MCP card number: %s\n", p.MCPCardNumber)
	if !p.CreatedAt.IsZero() {
		fmt.Fprintf(a.out, "Member since:    %s\n", p.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func (a *App) Logout(context.Context) error {
	a.authService.Logout()
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
