// @title           FreelanceHub Rating & Matching API
// @version         1.0
// @description     Эвристическая оценка постов, рейтинги фрилансеров и подбор исполнителей для вакансий.
// @contact.name    FreelanceHub
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	_ "freelancehub_backend/docs"
	"freelancehub_backend/internal/app"
)

func main() {
	app.Run()
}
