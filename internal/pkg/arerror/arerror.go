package arerror

import (
	"fmt"
	"reflect"
	"strings"
)

// Базовая функция для отображения ошибки.
// Ошибки могут быть вложены друг в друга,
// каждая вложенная ошибка печатается с новой строки.
// Сама ошибка это структура с любым набором экспортируемых полей,
// поле Err содержит вложенную ошибку.
// Формат поля задаётся тегом format, по умолчанию %s.
func ErrorBase(errStruct interface{}) string {
	reflV := reflect.ValueOf(errStruct).Elem()
	reflT := reflV.Type()
	fmtO := []string{}
	param := []interface{}{}

	for i := 0; i < reflV.NumField(); i++ {
		fieldT := reflT.Field(i)
		if !fieldT.IsExported() {
			continue
		}

		form, ok := fieldT.Tag.Lookup("format")
		if !ok {
			form = "%s"
		}

		if fieldT.Name == "Err" {
			fmtO = append(fmtO, "\n\t"+form)
		} else {
			fmtO = append(fmtO, fieldT.Name+": `"+form+"`")
		}

		param = append(param, reflV.Field(i).Interface())
	}

	return fmt.Sprintf(reflT.Name()+" "+strings.Join(fmtO, "; "), param...)
}
