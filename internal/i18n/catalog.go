package i18n

// catalog holds the static UI strings, loaded once at start-up.
var catalog = map[Locale]map[string]string{
	Russian: {
		"logo":                         "SecureDocs",
		"title":                        "Шифрование документов",
		"subtitle":                     "Защитите свои файлы надёжным шифрованием",
		"tab_encrypt":                  "Зашифровать",
		"tab_decrypt":                  "Расшифровать",
		"upload_title":                 "Перетащите файл сюда",
		"upload_subtitle":              "или нажмите для выбора",
		"upload_encrypted":             "Зашифрованный файл",
		"upload_key":                   "Файл ключа",
		"password_label":               "Пароль (необязательно)",
		"password_placeholder":         "Оставьте пустым для автогенерации",
		"password_hint":                "Если не указать, будет создан автоматически",
		"decrypt_password_label":       "Пароль (если использовался)",
		"decrypt_password_placeholder": "Введите пароль, если указывали при шифровании",
		"btn_encrypt":                  "Зашифровать",
		"btn_decrypt":                  "Расшифровать",
		"btn_processing":               "Обработка...",
		"encrypt_success":              "Файл зашифрован",
		"decrypt_success":              "Файл расшифрован",
		"result_file":                  "Файл:",
		"result_type":                  "Тип:",
		"result_size":                  "Размер:",
		"result_size_before":           "Размер до:",
		"result_size_after":            "Размер после:",
		"result_password":              "Пароль:",
		"result_filename":              "Имя файла:",
		"download_encrypted":           "Скачать файл",
		"download_key":                 "Скачать ключ",
		"download_decrypted":           "Скачать файл",
		"warning_save":                 "Сохраните оба файла. Без ключа расшифровка невозможна.",
		"encrypt_another":              "Зашифровать другой файл",
		"decrypt_another":              "Расшифровать другой файл",
		"footer":                       "AES-256 + ChaCha20 + RSA-4096",
		"error_prefix":                 "Ошибка: ",
		"error_no_file":                "Файл не доступен для скачивания",
		"error_download":               "Ошибка при скачивании: ",
		"copied":                       "Скопировано",
		"error_file_required":          "Выберите файл",
		"error_file_too_large":         "Файл слишком большой",
		"error_encrypt_failed":         "Не удалось зашифровать файл",
		"error_decrypt_failed":         "Не удалось расшифровать файл",
		"saved_to":                     "Сохранено: ",
	},
	English: {
		"logo":                         "SecureDocs",
		"title":                        "Document Encryption",
		"subtitle":                     "Protect your files with strong encryption",
		"tab_encrypt":                  "Encrypt",
		"tab_decrypt":                  "Decrypt",
		"upload_title":                 "Drop file here",
		"upload_subtitle":              "or click to browse",
		"upload_encrypted":             "Encrypted file",
		"upload_key":                   "Key file",
		"password_label":               "Password (optional)",
		"password_placeholder":         "Leave empty to auto-generate",
		"password_hint":                "Will be generated automatically if not provided",
		"decrypt_password_label":       "Password (if used)",
		"decrypt_password_placeholder": "Enter password if you used one",
		"btn_encrypt":                  "Encrypt",
		"btn_decrypt":                  "Decrypt",
		"btn_processing":               "Processing...",
		"encrypt_success":              "File encrypted",
		"decrypt_success":              "File decrypted",
		"result_file":                  "File:",
		"result_type":                  "Type:",
		"result_size":                  "Size:",
		"result_size_before":           "Size before:",
		"result_size_after":            "Size after:",
		"result_password":              "Password:",
		"result_filename":              "Filename:",
		"download_encrypted":           "Download file",
		"download_key":                 "Download key",
		"download_decrypted":           "Download file",
		"warning_save":                 "Save both files. Decryption is impossible without the key.",
		"encrypt_another":              "Encrypt another file",
		"decrypt_another":              "Decrypt another file",
		"footer":                       "AES-256 + ChaCha20 + RSA-4096",
		"error_prefix":                 "Error: ",
		"error_no_file":                "No file available for download",
		"error_download":               "Download error: ",
		"copied":                       "Copied",
		"error_file_required":          "Please choose a file",
		"error_file_too_large":         "File is too large",
		"error_encrypt_failed":         "Encryption failed",
		"error_decrypt_failed":         "Decryption failed",
		"saved_to":                     "Saved to: ",
	},
}

// Keys returns every key known to the catalog of loc.
func Keys(loc Locale) []string {
	m := catalog[loc]
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
