package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"qrforge/internal/models"
	"qrforge/internal/notify"
)

func (a *App) requireLogin(title string) error {
	if a.session != nil {
		return nil
	}
	err := errors.New("you must be logged in first")
	a.notifyErr(title, err)
	return err
}

func printItem(item models.SavedItem) {
	printlnFn(fmt.Sprintf("%s  %-7s  %-20s  %s", item.ID, item.Kind, item.FileBaseName, item.Text))
}

// List prints the logged-in user's saved codes, newest first.
func (a *App) List(ctx context.Context) error {
	if err := a.requireLogin("List Failed"); err != nil {
		return err
	}

	list, err := a.items.ListByOwner(ctx, a.session.Username)
	if err != nil {
		a.notifyErr("List Failed", err)
		return err
	}
	if len(list) == 0 {
		printlnFn("No saved codes yet.")
		return nil
	}
	for _, item := range list {
		printItem(item)
	}
	return nil
}

// Search prompts for a query and prints the matching saved codes.
func (a *App) Search(ctx context.Context) error {
	if err := a.requireLogin("Search Failed"); err != nil {
		return err
	}

	query, err := getSimpleText(a.reader, "Search for", os.Stdout)
	if err != nil {
		return err
	}

	list, err := a.items.Search(ctx, a.session.Username, query)
	if err != nil {
		a.notifyErr("Search Failed", err)
		return err
	}
	if len(list) == 0 {
		printlnFn("No matches.")
		return nil
	}
	for _, item := range list {
		printItem(item)
	}
	return nil
}

// Delete removes a saved code after an explicit confirmation.
func (a *App) Delete(ctx context.Context) error {
	if err := a.requireLogin("Delete Failed"); err != nil {
		return err
	}

	id, err := getSimpleText(a.reader, "Enter code id to delete", os.Stdout)
	if err != nil {
		return err
	}

	// ids are resolved against the session's own list; other owners' items
	// are indistinguishable from unknown ids here
	list, err := a.items.ListByOwner(ctx, a.session.Username)
	if err != nil {
		a.notifyErr("Delete Failed", err)
		return err
	}
	owned := false
	for i := range list {
		if list[i].ID == id {
			owned = true
			break
		}
	}
	if !owned {
		err := fmt.Errorf("no code with id %s", id)
		a.notifyErr("Delete Failed", err)
		return err
	}

	ok, err := getConfirm(a.reader, "Delete this code permanently?", os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		a.notifier.Notify(notify.Info("Delete Cancelled", "The code was kept."))
		return nil
	}

	removed, err := a.items.Delete(ctx, id)
	if err != nil {
		a.notifyErr("Delete Failed", err)
		return err
	}
	if !removed {
		err := fmt.Errorf("no code with id %s", id)
		a.notifyErr("Delete Failed", err)
		return err
	}

	a.notifier.Notify(notify.Success("Code Deleted", "The code was removed."))
	return nil
}

// Export writes a saved code to the download directory using its stored file
// name and format.
func (a *App) Export(ctx context.Context) error {
	if err := a.requireLogin("Download Failed"); err != nil {
		return err
	}

	id, err := getSimpleText(a.reader, "Enter code id to download", os.Stdout)
	if err != nil {
		return err
	}

	list, err := a.items.ListByOwner(ctx, a.session.Username)
	if err != nil {
		a.notifyErr("Download Failed", err)
		return err
	}

	for i := range list {
		if list[i].ID != id {
			continue
		}
		path, err := a.codes.DownloadItem(ctx, &list[i])
		if err != nil {
			a.notifyErr("Download Failed", err)
			return err
		}
		a.notifier.Notify(notify.Success("Download Complete", fmt.Sprintf("File saved to %s.", path)))
		return nil
	}

	err = fmt.Errorf("no code with id %s", id)
	a.notifyErr("Download Failed", err)
	return err
}
