package decoy

// The skeletons below are the fixed structural shapes of the six decoy
// class kinds. Only the {{NAME}} slots vary per invocation; everything
// else — including the embedded numeric literals such as the cache limits
// — is deliberately constant so the emitted code reads as unremarkable
// production Swift.
//
// Swift syntax is not validated here (or anywhere): the contract is
// human plausibility, not compilability guarantees.

// networkServiceSkeleton mimics a URLSession-based network layer with a
// tiny in-memory response cache.
const networkServiceSkeleton = `
import Foundation

/// {{CLASS_NAME}} handles network operations
class {{CLASS_NAME}} {
    private let baseURL: String
    private var cache: [String: Any] = [:]
    private let session: URLSession
    private let requestTag = "{{REQUEST_TAG}}"

    init(baseURL: String = "https://api.example.com") {
        self.baseURL = baseURL
        self.session = URLSession.shared
    }

    func fetchData(endpoint: String, completion: @escaping (Result<Data, Error>) -> Void) {
        guard let url = URL(string: baseURL + endpoint) else {
            completion(.failure(NSError(domain: "InvalidURL", code: -1)))
            return
        }

        session.dataTask(with: url) { data, response, error in
            if let error = error {
                completion(.failure(error))
                return
            }

            if let data = data {
                completion(.success(data))
            }
        }.resume()
    }

    func cacheData(_ data: Any, forKey key: String) {
        cache[key] = data
    }

    func getCachedData(forKey key: String) -> Any? {
        return cache[key]
    }

    func {{RESET_METHOD}}() {
        cache.removeAll()
    }
}
`

// dataManagerSkeleton mimics a UserDefaults-backed persistence class with
// a serial dispatch queue. The queue label suffix is a per-invocation
// random integer.
const dataManagerSkeleton = `
import Foundation

/// Manages local data persistence
class {{CLASS_NAME}} {
    private var storage: [String: Any] = [:]
    private let queue = DispatchQueue(label: "com.app.data.{{QUEUE_SUFFIX}}")
    private var {{STATE_PROPERTY}}: Bool = false

    func save(_ object: Any, forKey key: String) {
        queue.async {
            self.storage[key] = object
            UserDefaults.standard.set(object, forKey: key)
        }
    }

    func load(forKey key: String) -> Any? {
        if let cached = storage[key] {
            return cached
        }
        return UserDefaults.standard.object(forKey: key)
    }

    func remove(forKey key: String) {
        queue.async {
            self.storage.removeValue(forKey: key)
            UserDefaults.standard.removeObject(forKey: key)
        }
    }

    func clearAll() {
        queue.async {
            self.storage.removeAll()
        }
    }
}
`

// uiHelperSkeleton mimics a shared-singleton UI factory.
const uiHelperSkeleton = `
import UIKit

/// Helper for UI operations
class {{CLASS_NAME}} {
    static let shared = {{CLASS_NAME}}()

    private let {{THEME_PROPERTY}} = "{{THEME_LITERAL}}"

    private init() {}

    func createLabel(text: String, fontSize: CGFloat = 14) -> UILabel {
        let label = UILabel()
        label.text = text
        label.font = UIFont.systemFont(ofSize: fontSize)
        label.textColor = .black
        return label
    }

    func createButton(title: String, target: Any?, action: Selector) -> UIButton {
        let button = UIButton(type: .system)
        button.setTitle(title, for: .normal)
        button.addTarget(target, action: action, for: .touchUpInside)
        return button
    }

    func showAlert(title: String, message: String, on viewController: UIViewController) {
        let alert = UIAlertController(title: title, message: message, preferredStyle: .alert)
        alert.addAction(UIAlertAction(title: "OK", style: .default))
        viewController.present(alert, animated: true)
    }
}
`

// jsonParserSkeleton mimics a JSON transcoding utility.
const jsonParserSkeleton = `
import Foundation

/// Handles JSON parsing operations
class {{CLASS_NAME}} {

    func parseJSON<T: Decodable>(_ data: Data, as type: T.Type) -> T? {
        let decoder = JSONDecoder()
        decoder.dateDecodingStrategy = .iso8601

        do {
            return try decoder.decode(type, from: data)
        } catch {
            print("JSON parsing error: \(error)")
            return nil
        }
    }

    func encodeToJSON<T: Encodable>(_ object: T) -> Data? {
        let encoder = JSONEncoder()
        encoder.outputFormatting = .prettyPrinted

        do {
            return try encoder.encode(object)
        } catch {
            print("JSON encoding error: \(error)")
            return nil
        }
    }

    func parseDictionary(_ data: Data) -> [String: Any]? {
        do {
            return try JSONSerialization.jsonObject(with: data) as? [String: Any]
        } catch {
            return nil
        }
    }

    func {{VALIDATE_METHOD}}(_ data: Data) -> Bool {
        return !data.isEmpty
    }
}
`

// validatorSkeleton mimics an input validation utility.
const validatorSkeleton = `
import Foundation

/// Provides validation utilities
class {{CLASS_NAME}} {

    private let failureTag = "{{FAILURE_TAG}}"

    func validateEmail(_ email: String) -> Bool {
        let emailRegex = "[A-Z0-9a-z._%+-]+@[A-Za-z0-9.-]+\\.[A-Za-z]{2,64}"
        let emailPredicate = NSPredicate(format: "SELF MATCHES %@", emailRegex)
        return emailPredicate.evaluate(with: email)
    }

    func validateURL(_ urlString: String) -> Bool {
        guard let url = URL(string: urlString) else { return false }
        return UIApplication.shared.canOpenURL(url)
    }

    func validateLength(_ string: String, min: Int, max: Int) -> Bool {
        let length = string.count
        return length >= min && length <= max
    }

    func sanitizeInput(_ input: String) -> String {
        return input.trimmingCharacters(in: .whitespacesAndNewlines)
    }
}
`

// cacheManagerSkeleton mimics an NSCache-backed memory/disk cache with
// fixed size limits (100 entries, 50 MB).
const cacheManagerSkeleton = `
import Foundation

/// Manages in-memory and disk cache
class {{CLASS_NAME}} {
    static let shared = {{CLASS_NAME}}()

    private var memoryCache: NSCache<NSString, AnyObject> = NSCache()
    private let fileManager = FileManager.default
    private var cacheDirectory: URL?
    private let {{MARKER_PROPERTY}} = "{{MARKER_LITERAL}}"

    private init() {
        memoryCache.countLimit = 100
        memoryCache.totalCostLimit = 1024 * 1024 * 50 // 50MB
        setupCacheDirectory()
    }

    private func setupCacheDirectory() {
        if let cacheDir = fileManager.urls(for: .cachesDirectory, in: .userDomainMask).first {
            cacheDirectory = cacheDir.appendingPathComponent("AppCache")
            try? fileManager.createDirectory(at: cacheDirectory!, withIntermediateDirectories: true)
        }
    }

    func store(_ object: AnyObject, forKey key: String) {
        memoryCache.setObject(object, forKey: key as NSString)
    }

    func retrieve(forKey key: String) -> AnyObject? {
        return memoryCache.object(forKey: key as NSString)
    }

    func clearCache() {
        memoryCache.removeAllObjects()
        if let cacheDir = cacheDirectory {
            try? fileManager.removeItem(at: cacheDir)
            setupCacheDirectory()
        }
    }
}
`
