// Command onboard-wizard walks the FarmConnect registration and login flows
// from a terminal against a real backend. It is a manual exercise tool, not
// part of the library surface.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	onboard "github.com/farmconnect/onboard"
	"github.com/farmconnect/onboard/api"
)

func main() {
	var (
		baseURL   = flag.String("base-url", "http://localhost:8000", "backend origin")
		redisAddr = flag.String("redis", "", "redis address for session persistence (empty = in-memory)")
		mode      = flag.String("mode", "register", "register | login | whoami | logout")
		audit     = flag.Bool("audit", false, "write audit events as JSON lines to stderr")
		timeout   = flag.Duration("timeout", 30*time.Second, "per-request timeout")
	)
	flag.Parse()

	builder := onboard.New().
		WithBaseURL(*baseURL).
		WithHTTPClient(&http.Client{Timeout: *timeout})
	if *redisAddr != "" {
		builder.WithRedis(redis.NewClient(&redis.Options{Addr: *redisAddr}))
	}
	if *audit {
		builder.WithAuditSink(onboard.NewJSONWriterSink(os.Stderr))
	}

	engine, err := builder.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "setup failed:", err)
		os.Exit(1)
	}
	defer engine.Close()

	ctx := context.Background()
	in := bufio.NewReader(os.Stdin)

	switch *mode {
	case "register":
		runRegister(ctx, engine, in)
	case "login":
		runLogin(ctx, engine, in)
	case "whoami":
		runWhoami(ctx, engine)
	case "logout":
		if err := engine.Logout(ctx); err != nil {
			fmt.Fprintln(os.Stderr, "logout failed:", err)
			os.Exit(1)
		}
		fmt.Println("logged out")
	default:
		fmt.Fprintln(os.Stderr, "unknown mode:", *mode)
		os.Exit(2)
	}
}

func runRegister(ctx context.Context, engine *onboard.Engine, in *bufio.Reader) {
	reg := engine.NewRegistration()

	for !reg.Done() {
		step := reg.Step()
		fmt.Printf("\n== Step %d: %s ==\n", step.Number, step.Title)

		switch step.Kind {
		case onboard.StepRoleSelect:
			promptRoleStep(reg, in)
		case onboard.StepBasicInfo:
			promptFields(reg, in, []onboard.Field{
				onboard.FieldFirstName, onboard.FieldLastName, onboard.FieldEmail,
				onboard.FieldPhone, onboard.FieldUsername, onboard.FieldPassword,
				onboard.FieldConfirmPassword, onboard.FieldAddress, onboard.FieldCity,
				onboard.FieldState,
			})
		case onboard.StepRoleDetails:
			if reg.Form().Role == onboard.RoleFarmer {
				promptFields(reg, in, []onboard.Field{
					onboard.FieldFarmName, onboard.FieldFarmSize,
					onboard.FieldFarmType, onboard.FieldYearsFarming,
				})
			} else {
				promptFields(reg, in, []onboard.Field{
					onboard.FieldBusinessName, onboard.FieldBusinessType,
					onboard.FieldBusinessRegNum,
				})
			}
		case onboard.StepVerify:
			promptVerify(ctx, reg, in)
			continue
		}

		if err := reg.Next(ctx); err != nil {
			reportError(reg, err)
		} else if notice := reg.Notice(); notice != "" {
			fmt.Println(notice)
		}
	}

	fmt.Println("\nregistration complete")
}

func promptRoleStep(reg *onboard.Registration, in *bufio.Reader) {
	role := prompt(in, "role (farmer/buyer)")
	reg.SetRole(onboard.Role(role))
	userType := prompt(in, "account type (individual/business)")
	reg.SetUserType(onboard.UserType(userType))
	agree := prompt(in, "agree to terms? (y/n)")
	reg.SetTermsAgreed(strings.EqualFold(agree, "y"))
}

func promptFields(reg *onboard.Registration, in *bufio.Reader, fields []onboard.Field) {
	for _, f := range fields {
		reg.SetField(f, prompt(in, string(f)))
	}
}

func promptVerify(ctx context.Context, reg *onboard.Registration, in *bufio.Reader) {
	code := prompt(in, "verification code (or 'resend')")
	if strings.EqualFold(code, "resend") {
		if err := reg.ResendCode(ctx); err != nil {
			fmt.Fprintln(os.Stderr, "resend failed:", err)
		} else {
			fmt.Println(reg.Notice())
		}
		return
	}

	result, err := reg.SubmitVerification(ctx, code)
	if err != nil {
		reportError(reg, err)
		return
	}
	fmt.Println(result.Message)
	fmt.Printf("continue at %s\n", result.RedirectPath)
}

func runLogin(ctx context.Context, engine *onboard.Engine, in *bufio.Reader) {
	email := prompt(in, "email")
	password := prompt(in, "password")

	result, err := engine.Login(ctx, email, password)
	if err != nil {
		fmt.Fprintln(os.Stderr, "login failed:", errorText(err))
		os.Exit(1)
	}

	fmt.Printf("welcome back, %s %s\n", result.User.FirstName, result.User.LastName)
	fmt.Printf("continue at %s\n", result.RedirectPath)
}

func runWhoami(ctx context.Context, engine *onboard.Engine) {
	cred, err := engine.CurrentUser(ctx)
	if err != nil {
		fmt.Println("no active session:", err)
		return
	}
	fmt.Printf("%s %s <%s> (%s), session expires %s\n",
		cred.User.FirstName, cred.User.LastName, cred.User.Email,
		cred.User.Role, cred.ExpiresAt.Format(time.RFC3339))
}

func prompt(in *bufio.Reader, label string) string {
	fmt.Printf("%s: ", label)
	line, _ := in.ReadString('\n')
	return strings.TrimSpace(line)
}

func reportError(reg *onboard.Registration, err error) {
	if errors.Is(err, onboard.ErrStepBlocked) {
		for field, msg := range reg.Errors() {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", field, msg)
		}
		return
	}
	fmt.Fprintln(os.Stderr, errorText(err))
}

func errorText(err error) string {
	var remote *api.RemoteError
	if errors.As(err, &remote) {
		return remote.Detail
	}
	if errors.Is(err, api.ErrNetwork) {
		return "network error, please check your connection"
	}
	return err.Error()
}
