package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/userdesk/internal/client/models"
	"github.com/dmitrijs2005/userdesk/internal/client/router"
	"github.com/dmitrijs2005/userdesk/internal/client/services"
)

type editField struct {
	name  string
	label string
}

var editFields = []editField{
	{models.FieldFirstName, "First name"},
	{models.FieldLastName, "Last name"},
	{models.FieldEmail, "Email"},
}

// Edit opens the edit view for user args[0].
func (a *App) Edit(ctx context.Context, args []string) error {
	id, err := parsePositive(args[0], "user id")
	if err != nil {
		a.println(err.Error())
		return err
	}
	return a.navigate(ctx, router.EditPath(id))
}

// editUser loads the user, prompts for each field (an empty answer keeps the
// current value, "-" clears it) and submits. After a rejected submission the operator may
// retry with the entered values; on success the console returns to the list.
func (a *App) editUser(ctx context.Context, id int) error {
	if err := a.editor.Open(ctx, id); err != nil {
		a.println(errorStyle.Render(a.editor.Message()))
		a.println("Type 'open /users' to go back.")
		return err
	}
	a.outMu.Lock()
	renderUser(a.out, a.editor.User())
	a.outMu.Unlock()

	for {
		if err := a.promptDraft(); err != nil {
			a.editor.Reset()
			return err
		}

		err := a.editor.Submit(ctx)
		if err == nil {
			return a.navigate(ctx, router.PathCollection)
		}

		var ve *services.ValidationError
		if errors.As(err, &ve) {
			a.outMu.Lock()
			renderFieldErrors(a.out, ve.Fields)
			a.outMu.Unlock()
		} else {
			a.println(errorStyle.Render(a.editor.Message()))
		}

		again, cerr := GetConfirmation(a.reader, "Try again?", a.out)
		if cerr != nil || !again {
			a.println("Edit cancelled.")
			return a.navigate(ctx, router.PathCollection)
		}
	}
}

func (a *App) promptDraft() error {
	draft := a.editor.Draft()
	for _, f := range editFields {
		value, err := getSimpleText(a.reader, f.label+" ["+draft.Get(f.name)+"]", a.out)
		if err != nil {
			return err
		}
		switch value {
		case "":
			continue
		case "-":
			value = ""
		}
		if err := a.editor.SetField(f.name, value); err != nil {
			return err
		}
	}
	return nil
}
