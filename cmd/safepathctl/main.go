// Package main - офлайн утилита SafestPath: расчет маршрута и наполнение локальной базы SQLite.
//
// Использование:
//
//	safepathctl seed --db data/safe_route.db
//	safepathctl route --db data/safe_route.db --from 19.0760,72.8777 --to 19.1136,72.8697
package main

func main() {
	Execute()
}
