// @title        Workshop Genie API
// @version      1.0
// @description  Workshop Genie 的後端 API 文件：瀏覽與預約 workshop
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey AdminKey
// @in header
// @name X-Admin-Key
package main

import (
	"log"

	_ "workshop-genie/docs" // 引入 swag 產出的 docs
)

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
