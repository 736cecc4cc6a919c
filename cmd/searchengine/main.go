package main

import "github.com/unimarket/semantic-search/internal/app"

func main() {
	err := app.NewSearchApp().Run()
	if err != nil {
		panic(err)
	}
}
