package app_test

import (
	"fmt"

	"github.com/go-drift/droid/pkg/activity"
	"github.com/go-drift/droid/pkg/app"
	"github.com/go-drift/droid/pkg/extras"
	"github.com/go-drift/droid/pkg/view"
)

type greeter struct {
	activity.Base
}

func (g *greeter) OnStart() {
	label := view.NewTextView("greeting", "Hello, "+g.Extras().String("user", "stranger"))
	g.AddView("greeting", label)
}

// This example shows how to register an activity and start it with extras.
func ExampleApp_StartActivity() {
	a := app.New("Greeter", "com.example.greeter")
	a.RegisterActivity("main", func() activity.Activity { return &greeter{} })

	x := extras.New()
	x.PutString("user", "Ada")
	if err := a.StartActivity("main", x); err != nil {
		fmt.Println(err)
		return
	}

	label := activity.BaseOf(a.Active()).View("greeting").(*view.TextView)
	fmt.Println(a.ActiveName(), a.Active().State(), label.Text())
	// Output: main resumed Hello, Ada
}

// This example shows the error returned for an unregistered name.
func ExampleApp_StartActivity_notFound() {
	a := app.New("Greeter", "com.example.greeter")
	a.RegisterActivity("main", func() activity.Activity { return &greeter{} })
	a.RegisterActivity("settings", func() activity.Activity { return &greeter{} })

	fmt.Println(a.StartActivity("profile", nil))
	// Output: activity "profile" not registered (registered: main, settings)
}

// This example shows a click handler mutating the tree it belongs to.
func ExampleApp_clicks() {
	count := 0
	label := view.NewTextView("count", "0")
	button := view.NewButton("inc", "+", view.ClickFunc(func(view.View) {
		count++
		label.SetText(fmt.Sprint(count))
	}))

	view.Click(button)
	view.Click(button)
	fmt.Println(label.Text())
	// Output: 2
}
